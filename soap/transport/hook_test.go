package transport

import (
	"net/http"
	"strings"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestStripContentLength(t *testing.T) {
	var seen *http.Request
	hook := &stripContentLength{next: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})}

	req, err := http.NewRequest(http.MethodPost, "http://localhost/service", strings.NewReader("<a/>"))
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	req.Header.Set("Content-Length", "4")
	req.Header.Set("SOAPAction", `"GetCitiesByCountry"`)

	if _, err := hook.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}

	if _, ok := seen.Header["Content-Length"]; ok {
		t.Error("Content-Length header was not removed")
	}
	if seen.ContentLength != 4 {
		t.Errorf("ContentLength = %d, want 4", seen.ContentLength)
	}
	if seen.Header.Get("SOAPAction") == "" {
		t.Error("other headers must be preserved")
	}
	if req.Header.Get("Content-Length") != "4" {
		t.Error("caller's request was mutated")
	}
}

func TestStripContentLength_NoHeaderPassesThrough(t *testing.T) {
	var seen *http.Request
	hook := &stripContentLength{next: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		seen = req
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})}

	req, _ := http.NewRequest(http.MethodPost, "http://localhost/service", nil)
	if _, err := hook.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}
	if seen != req {
		t.Error("request without Content-Length should be forwarded unchanged")
	}
}
