// Package transport provides the HTTP/TLS message sender for SOAP calls.
//
// The transport layer handles:
//   - Pre-flight validation of the transport configuration
//   - Loading client identity and trust anchors from JKS keystores
//   - Hostname verification policy
//   - Request/response handling with the SOAPAction header
package transport
