// Package translate wraps an optional machine-translation endpoint
// (LibreTranslate-compatible). Translation is a nicety: when the endpoint is
// unconfigured or fails, the input text is returned unchanged.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type Options struct {
	APIURL     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	apiURL     string
}

func New(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: client,
		apiURL:     strings.TrimSpace(opts.APIURL),
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate maps text between languages, returning the input unchanged on
// any failure.
func (c *Client) Translate(ctx context.Context, text, source, target string) string {
	if c == nil || c.apiURL == "" || strings.TrimSpace(text) == "" {
		return text
	}

	body, err := json.Marshal(translateRequest{Q: text, Source: source, Target: target})
	if err != nil {
		return text
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return text
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return text
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return text
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return text
	}
	if strings.TrimSpace(out.TranslatedText) == "" {
		return text
	}
	return out.TranslatedText
}

// ToHindi is the banner pipeline's use case: English headline text rendered
// in Devanagari.
func (c *Client) ToHindi(ctx context.Context, text string) string {
	return c.Translate(ctx, text, "en", "hi")
}
