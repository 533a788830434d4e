package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Source != "en" || req.Target != "hi" {
			t.Fatalf("unexpected language pair: %s -> %s", req.Source, req.Target)
		}
		_ = json.NewEncoder(w).Encode(translateResponse{TranslatedText: "शुभ दीपावली"})
	}))
	defer ts.Close()

	c := New(Options{APIURL: ts.URL})
	if got := c.ToHindi(context.Background(), "Happy Diwali"); got != "शुभ दीपावली" {
		t.Errorf("got %q", got)
	}
}

func TestTranslatePassthroughOnFailure(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer failing.Close()
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(translateResponse{})
	}))
	defer empty.Close()

	tests := []struct {
		name   string
		client *Client
	}{
		{"unconfigured", New(Options{})},
		{"http error", New(Options{APIURL: failing.URL})},
		{"empty translation", New(Options{APIURL: empty.URL})},
		{"unreachable", New(Options{APIURL: "http://127.0.0.1:1"})},
	}
	for _, tc := range tests {
		if got := tc.client.ToHindi(context.Background(), "Happy Diwali"); got != "Happy Diwali" {
			t.Errorf("%s: got %q, want input unchanged", tc.name, got)
		}
	}
}

func TestTranslateEmptyInput(t *testing.T) {
	c := New(Options{APIURL: "http://example.invalid"})
	if got := c.ToHindi(context.Background(), ""); got != "" {
		t.Errorf("empty input should stay empty, got %q", got)
	}
}
