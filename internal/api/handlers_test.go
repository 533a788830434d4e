package api

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/bannerforge/internal/banner"
	"github.com/youruser/bannerforge/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppEnv:         "test",
		Port:           "0",
		AIImageTimeout: time.Second,
		AssetsDir:      t.TempDir(),
		OutputDir:      t.TempDir(),
	}
}

func testRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, NewHandlers(cfg, zerolog.Nop()))
	return r
}

func logoPNG(t *testing.T) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, imaging.New(60, 60, color.NRGBA{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func postBanner(t *testing.T, r *gin.Engine, req BannerRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	httpReq := httptest.NewRequest(http.MethodPost, "/api/banner", bytes.NewReader(body))
	httpReq.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, httpReq)
	return w
}

func TestGenerateBannerEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	// One product photo in the pool; it should be auto-picked and placed on
	// the blanker (left) side of the gradient.
	productDir := filepath.Join(cfg.AssetsDir, "products")
	if err := os.MkdirAll(productDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := imaging.Save(imaging.New(100, 100, color.NRGBA{G: 255, A: 255}), filepath.Join(productDir, "product.png")); err != nil {
		t.Fatal(err)
	}
	r := testRouter(t, cfg)

	seed := int64(1)
	w := postBanner(t, r, BannerRequest{
		Width:        1080,
		Height:       1080,
		Festival:     "Diwali",
		Headline:     "Happy Diwali",
		Color:        "#FFFFFF",
		LogoB64:      logoPNG(t),
		LogoPosition: "Top-Left",
		Seed:         &seed,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	// No generator configured, so the gradient fallback must be flagged.
	if w.Header().Get("X-Banner-Background") != "fallback-gradient" {
		t.Error("expected fallback background header")
	}

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1080 {
		t.Fatalf("banner size = %dx%d, want 1080x1080", b.Dx(), b.Dy())
	}

	out := imaging.Clone(img)
	// Output is flattened opaque.
	for _, p := range []struct{ x, y int }{{0, 0}, {539, 539}, {1079, 1079}} {
		if a := out.NRGBAAt(p.x, p.y).A; a != 255 {
			t.Fatalf("pixel (%d,%d) not opaque", p.x, p.y)
		}
	}
	// The logo corner must differ from the plain gradient background.
	plain := banner.FallbackGradient(1080, 1080)
	if out.NRGBAAt(50, 50) == plain.NRGBAAt(50, 50) {
		t.Error("no logo visible near the top-left corner")
	}
	// The auto-picked product must sit left-center.
	if out.NRGBAAt(100, 540) == plain.NRGBAAt(100, 540) {
		t.Error("no product visible at left-center")
	}
}

func TestGenerateBannerDefaultsSize(t *testing.T) {
	r := testRouter(t, testConfig(t))
	w := postBanner(t, r, BannerRequest{Festival: "Holi", Headline: "Happy Holi"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1080 || b.Dy() != 1080 {
		t.Errorf("default size = %dx%d, want 1080x1080", b.Dx(), b.Dy())
	}
}

func TestGenerateBannerSaves(t *testing.T) {
	cfg := testConfig(t)
	r := testRouter(t, cfg)

	w := postBanner(t, r, BannerRequest{Festival: "Eid", Headline: "Eid Mubarak", Save: true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	name := w.Header().Get("X-Banner-Saved")
	if name == "" {
		t.Fatal("expected X-Banner-Saved header")
	}
	if !strings.HasPrefix(name, "eid_") {
		t.Errorf("unexpected saved name %q", name)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, name)); err != nil {
		t.Errorf("saved banner missing: %v", err)
	}
}

func TestGenerateBannerRejectsBadJSON(t *testing.T) {
	r := testRouter(t, testConfig(t))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/banner", strings.NewReader("{not json"))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := testRouter(t, testConfig(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestFestivals(t *testing.T) {
	r := testRouter(t, testConfig(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/festivals", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Diwali") {
		t.Error("festival list missing Diwali")
	}
}

func TestQREndpoint(t *testing.T) {
	r := testRouter(t, testConfig(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr?text=https://example.com&size=200", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode qr: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 {
		t.Errorf("qr size = %d, want 200", b.Dx())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing text: status = %d, want 400", w.Code)
	}
}
