// Package background fetches banner backgrounds from an external
// text-to-image endpoint, falling back to a local gradient whenever the
// endpoint is unconfigured or misbehaves. The fallback path never fails.
package background

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/youruser/bannerforge/internal/banner"
)

type Options struct {
	APIURL     string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	apiURL     string
	token      string
}

func New(opts Options) *Client {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		httpClient: client,
		apiURL:     strings.TrimSpace(opts.APIURL),
		token:      strings.TrimSpace(opts.APIKey),
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Generate requests an image from the external endpoint. Unlike
// GenerateOrFallback it surfaces failures, which makes the error paths
// testable on their own.
func (c *Client) Generate(ctx context.Context, prompt string, width, height int) (image.Image, error) {
	if c == nil || c.apiURL == "" {
		return nil, errors.New("background: generator not configured")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, errors.New("background: empty prompt")
	}

	body, err := json.Marshal(generateRequest{Prompt: prompt, Width: width, Height: height})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("background: http %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("background: decode response: %w", err)
	}
	return img, nil
}

// GenerateOrFallback returns a background of exactly the requested size. It
// tries the external generator first and substitutes the gradient on any
// failure; the second return reports whether the fallback was used so the
// caller can log a quality warning.
func (c *Client) GenerateOrFallback(ctx context.Context, prompt string, width, height int) (*image.NRGBA, bool) {
	img, err := c.Generate(ctx, prompt, width, height)
	if err != nil {
		return banner.FallbackGradient(width, height), true
	}
	out := imaging.Clone(img)
	b := out.Bounds()
	if b.Dx() != width || b.Dy() != height {
		out = imaging.Resize(out, width, height, imaging.Lanczos)
	}
	return out, false
}
