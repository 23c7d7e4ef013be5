package transport

import (
	"net/http"
)

// stripContentLength is the pre-send hook installed in front of every other
// RoundTripper. It drops any Content-Length header set by callers or static
// header options so the HTTP layer writes the length exactly once.
type stripContentLength struct {
	next http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *stripContentLength) RoundTrip(req *http.Request) (*http.Response, error) {
	if _, ok := req.Header["Content-Length"]; !ok {
		return t.next.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	reqCopy := req.Clone(req.Context())
	reqCopy.Header.Del("Content-Length")
	return t.next.RoundTrip(reqCopy)
}
