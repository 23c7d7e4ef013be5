package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestRedactingHandler(t *testing.T) {
	tests := []struct {
		name     string
		attrs    []slog.Attr
		expected map[string]string
	}{
		{
			name: "sensitive keys are redacted",
			attrs: []slog.Attr{
				slog.String("keystore_password", "changeit"),
				slog.String("api_token", "abcdef"),
				slog.String("country", "Canada"), // safe
			},
			expected: map[string]string{
				"keystore_password": "[REDACTED]",
				"api_token":         "[REDACTED]",
				"country":           "Canada",
			},
		},
		{
			name: "case insensitive matching",
			attrs: []slog.Attr{
				slog.String("TrustStorePassword", "secret"),
				slog.String("AUTHORIZATION", "Basic eHl6"),
				slog.String("Key_Alias", "client"),
			},
			expected: map[string]string{
				"TrustStorePassword": "[REDACTED]",
				"AUTHORIZATION":      "[REDACTED]",
				"Key_Alias":          "client",
			},
		},
		{
			name: "nested groups are redacted",
			attrs: []slog.Attr{
				slog.Group("auth",
					slog.String("password", "hidden"),
					slog.String("user", "visible"),
				),
			},
			expected: map[string]string{
				"auth.password": "[REDACTED]",
				"auth.user":     "visible",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewRedactingHandler(slog.NewJSONHandler(&buf, nil))
			logger := slog.New(h)

			// Log with attributes
			args := make([]any, len(tt.attrs))
			for i, a := range tt.attrs {
				args[i] = a
			}
			logger.Info("test message", args...)

			// Parse result
			var result map[string]any
			if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
				t.Fatalf("failed to parse log output: %v", err)
			}

			// Verify expectations
			for k, v := range tt.expected {
				parts := strings.Split(k, ".")
				var val any = result
				var found bool

				// Traverse json map to find key
				for i, part := range parts {
					m, ok := val.(map[string]any)
					if !ok {
						break
					}
					val, ok = m[part]
					if !ok {
						break
					}
					if i == len(parts)-1 {
						found = true
					}
				}

				if !found {
					t.Errorf("key %s not found in output", k)
					continue
				}

				if val != v {
					t.Errorf("key %s: got %v, want %v", k, val, v)
				}
			}
		})
	}
}

func TestRedactingHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil))).
		With("key_password", "keysecret", "endpoint", "https://weather.example")

	logger.Info("building transport")

	out := buf.String()
	if strings.Contains(out, "keysecret") {
		t.Errorf("password leaked: %s", out)
	}
	if !strings.Contains(out, "endpoint=https://weather.example") {
		t.Errorf("endpoint missing: %s", out)
	}
}
