// Package testpki generates throwaway certificate authorities, server
// certificates and JKS stores for tests.
package testpki

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pavlo-v-chernykh/keystore-go/v4"
)

// Fixture credentials. keystore-go requires passwords of at least six bytes.
const (
	StorePassword = "changeit"
	KeyPassword   = "keysecret"
	KeyAlias      = "client"
	ClientCN      = "globalweather-client"
)

// PKI is a single-level CA able to issue server and client certificates.
type PKI struct {
	CA    *x509.Certificate
	caKey *ecdsa.PrivateKey
	dir   string
}

// New creates a CA whose files live in a test temp directory.
func New(t testing.TB) *PKI {
	t.Helper()

	key := newKey(t)
	tmpl := &x509.Certificate{
		SerialNumber:          serial(t),
		Subject:               pkix.Name{CommonName: "globalweather test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("create CA: %v", err)
	}
	ca, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse CA: %v", err)
	}

	return &PKI{CA: ca, caKey: key, dir: t.TempDir()}
}

// Pool returns a pool holding only the CA.
func (p *PKI) Pool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(p.CA)
	return pool
}

// ServerTLS returns a server TLS config that requires client certificates
// issued by the CA. The server certificate carries exactly the given names.
func (p *PKI) ServerTLS(t testing.TB, dnsNames []string, ips []net.IP) *tls.Config {
	t.Helper()

	cert, key := p.issue(t, "globalweather test server", x509.ExtKeyUsageServerAuth, dnsNames, ips)
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw, p.CA.Raw},
			PrivateKey:  key,
			Leaf:        cert,
		}},
		ClientAuth: tls.RequireAndVerifyClientCert,
		ClientCAs:  p.Pool(),
	}
}

// WriteKeystore writes a JKS keystore holding a client key entry under
// KeyAlias and returns its path.
func (p *PKI) WriteKeystore(t testing.TB) string {
	t.Helper()

	cert, key := p.issue(t, ClientCN, x509.ExtKeyUsageClientAuth, nil, nil)
	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal client key: %v", err)
	}

	ks := keystore.New()
	entry := keystore.PrivateKeyEntry{
		CreationTime: time.Now(),
		PrivateKey:   pkcs8,
		CertificateChain: []keystore.Certificate{
			{Type: "X509", Content: cert.Raw},
			{Type: "X509", Content: p.CA.Raw},
		},
	}
	if err := ks.SetPrivateKeyEntry(KeyAlias, entry, []byte(KeyPassword)); err != nil {
		t.Fatalf("set key entry: %v", err)
	}
	return p.store(t, "client.jks", ks)
}

// WriteTruststore writes a JKS truststore holding the CA and returns its path.
func (p *PKI) WriteTruststore(t testing.TB) string {
	t.Helper()

	ks := keystore.New()
	entry := keystore.TrustedCertificateEntry{
		CreationTime: time.Now(),
		Certificate:  keystore.Certificate{Type: "X509", Content: p.CA.Raw},
	}
	if err := ks.SetTrustedCertificateEntry("ca", entry); err != nil {
		t.Fatalf("set trusted entry: %v", err)
	}
	return p.store(t, "trust.jks", ks)
}

// WriteEmptyTruststore writes a valid JKS file with no entries.
func (p *PKI) WriteEmptyTruststore(t testing.TB) string {
	t.Helper()
	return p.store(t, "empty.jks", keystore.New())
}

// WriteFile writes raw bytes into the fixture directory.
func (p *PKI) WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func (p *PKI) store(t testing.TB, name string, ks keystore.KeyStore) string {
	t.Helper()

	path := filepath.Join(p.dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	if err := ks.Store(f, []byte(StorePassword)); err != nil {
		t.Fatalf("store %s: %v", name, err)
	}
	return path
}

func (p *PKI) issue(t testing.TB, cn string, usage x509.ExtKeyUsage, dnsNames []string, ips []net.IP) (*x509.Certificate, *ecdsa.PrivateKey) {
	t.Helper()

	key := newKey(t)
	tmpl := &x509.Certificate{
		SerialNumber: serial(t),
		Subject:      pkix.Name{CommonName: cn},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{usage},
		DNSNames:     dnsNames,
		IPAddresses:  ips,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, p.CA, &key.PublicKey, p.caKey)
	if err != nil {
		t.Fatalf("issue %s: %v", cn, err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("parse %s: %v", cn, err)
	}
	return cert, key
}

func newKey(t testing.TB) *ecdsa.PrivateKey {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func serial(t testing.TB) *big.Int {
	t.Helper()

	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		t.Fatalf("serial: %v", err)
	}
	return n
}
