package transport

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"

	"github.com/pavlo-v-chernykh/keystore-go/v4"
)

// NewTLSConfig builds a client TLS configuration from the keystore and
// truststore named in cfg. The caller is expected to have validated cfg.
//
// When cfg.VerifyHostname is false the server chain is still verified
// against the truststore, but the certificate names are not matched against
// the endpoint host.
func NewTLSConfig(cfg Config) (*tls.Config, error) {
	cert, err := loadIdentity(cfg.KeystorePath, cfg.KeystorePassword, cfg.KeyAlias, cfg.KeyPassword)
	if err != nil {
		return nil, err
	}

	roots, err := loadTrustAnchors(cfg.TruststorePath, cfg.TruststorePassword)
	if err != nil {
		return nil, err
	}

	tlsCfg := &tls.Config{
		MinVersion:   tls.VersionTLS12,
		Certificates: []tls.Certificate{cert},
		RootCAs:      roots,
	}

	if !cfg.VerifyHostname {
		// Chain verification moves into VerifyConnection so only the name
		// check is dropped.
		tlsCfg.InsecureSkipVerify = true
		tlsCfg.VerifyConnection = func(cs tls.ConnectionState) error {
			return verifyChain(cs, roots)
		}
	}

	return tlsCfg, nil
}

// verifyChain checks the peer chain against roots without a DNS name.
func verifyChain(cs tls.ConnectionState, roots *x509.CertPool) error {
	if len(cs.PeerCertificates) == 0 {
		return errors.New("transport: server presented no certificate")
	}

	intermediates := x509.NewCertPool()
	for _, c := range cs.PeerCertificates[1:] {
		intermediates.AddCert(c)
	}

	_, err := cs.PeerCertificates[0].Verify(x509.VerifyOptions{
		Roots:         roots,
		Intermediates: intermediates,
		KeyUsages:     []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	})
	if err != nil {
		return fmt.Errorf("transport: verify server certificate: %w", err)
	}
	return nil
}

// loadIdentity reads the private key entry named alias from a JKS keystore.
func loadIdentity(path, storePassword, alias, keyPassword string) (tls.Certificate, error) {
	ks, err := readKeyStore(path, storePassword)
	if err != nil {
		return tls.Certificate{}, &TLSSetupError{Op: "load keystore", Err: err}
	}

	entry, err := ks.GetPrivateKeyEntry(alias, []byte(keyPassword))
	if err != nil {
		return tls.Certificate{}, &TLSSetupError{Op: fmt.Sprintf("read key entry %q", alias), Err: err}
	}

	key, err := x509.ParsePKCS8PrivateKey(entry.PrivateKey)
	if err != nil {
		return tls.Certificate{}, &TLSSetupError{Op: fmt.Sprintf("parse private key %q", alias), Err: err}
	}

	if len(entry.CertificateChain) == 0 {
		return tls.Certificate{}, &TLSSetupError{
			Op:  fmt.Sprintf("read key entry %q", alias),
			Err: errors.New("empty certificate chain"),
		}
	}

	cert := tls.Certificate{PrivateKey: key}
	for _, c := range entry.CertificateChain {
		cert.Certificate = append(cert.Certificate, c.Content)
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return tls.Certificate{}, &TLSSetupError{Op: fmt.Sprintf("parse certificate %q", alias), Err: err}
	}
	cert.Leaf = leaf

	return cert, nil
}

// loadTrustAnchors collects every certificate in a JKS truststore.
func loadTrustAnchors(path, password string) (*x509.CertPool, error) {
	ks, err := readKeyStore(path, password)
	if err != nil {
		return nil, &TLSSetupError{Op: "load truststore", Err: err}
	}

	pool := x509.NewCertPool()
	count := 0
	for _, alias := range ks.Aliases() {
		var certs []keystore.Certificate
		switch {
		case ks.IsTrustedCertificateEntry(alias):
			entry, err := ks.GetTrustedCertificateEntry(alias)
			if err != nil {
				return nil, &TLSSetupError{Op: fmt.Sprintf("read trusted entry %q", alias), Err: err}
			}
			certs = append(certs, entry.Certificate)
		case ks.IsPrivateKeyEntry(alias):
			chain, err := ks.GetPrivateKeyEntryCertificateChain(alias)
			if err != nil {
				return nil, &TLSSetupError{Op: fmt.Sprintf("read chain %q", alias), Err: err}
			}
			certs = append(certs, chain...)
		}

		for _, c := range certs {
			parsed, err := x509.ParseCertificate(c.Content)
			if err != nil {
				return nil, &TLSSetupError{Op: fmt.Sprintf("parse trusted certificate %q", alias), Err: err}
			}
			pool.AddCert(parsed)
			count++
		}
	}

	if count == 0 {
		return nil, &TLSSetupError{Op: "load truststore", Err: errors.New("no certificates found")}
	}
	return pool, nil
}

func readKeyStore(path, password string) (keystore.KeyStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return keystore.KeyStore{}, err
	}
	defer f.Close()

	ks := keystore.New()
	if err := ks.Load(f, []byte(password)); err != nil {
		return keystore.KeyStore{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ks, nil
}
