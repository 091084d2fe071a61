package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWgetHTTPClient_Do(t *testing.T) {
	tests := map[string]struct {
		cfg           HTTPClientConfig
		wantUserAgent string
	}{
		"default agent": {cfg: HTTPClientConfig{}, wantUserAgent: ToolUserAgent},
		"custom agent":  {cfg: HTTPClientConfig{UserAgent: "curl/8.0"}, wantUserAgent: "curl/8.0"},
		"large buffers": {cfg: HTTPClientConfig{LargeBuffers: true}, wantUserAgent: ToolUserAgent},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var gotAgent, gotEncoding string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAgent = r.Header.Get("User-Agent")
				gotEncoding = r.Header.Get("Accept-Encoding")
				w.Write([]byte("ok"))
			}))
			defer srv.Close()

			req, err := http.NewRequestWithContext(testContext(t), http.MethodGet, srv.URL, nil)
			if err != nil {
				t.Fatal(err)
			}
			resp, err := NewWgetHTTPClient(tc.cfg).Do(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)

			if string(body) != "ok" {
				t.Errorf("expected body ok, got %q", body)
			}
			if gotAgent != tc.wantUserAgent {
				t.Errorf("expected user agent %q, got %q", tc.wantUserAgent, gotAgent)
			}
			if gotEncoding != "" {
				t.Errorf("expected no transparent compression, got Accept-Encoding %q", gotEncoding)
			}
		})
	}
}
