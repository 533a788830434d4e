package api

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/youruser/bannerforge/internal/assets"
	"github.com/youruser/bannerforge/internal/banner"
	"github.com/youruser/bannerforge/internal/background"
	"github.com/youruser/bannerforge/internal/config"
	"github.com/youruser/bannerforge/internal/store"
	"github.com/youruser/bannerforge/internal/translate"
)

const (
	defaultWidth  = 1080
	defaultHeight = 1080
	minDimension  = 600

	defaultLogoScalePct    = 18
	defaultProductScalePct = 45
	defaultDecorationCount = 3

	headlineRatio = 0.075
	subtextRatio  = 0.045

	qrWidthFrac = 0.12
)

// BannerRequest mirrors the banner form: canvas size, festival, text and the
// optional uploads. Zero values get the form's defaults.
type BannerRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	Festival  string `json:"festival"`
	UsePreset bool   `json:"use_preset"`
	Prompt    string `json:"prompt"`

	Headline      string `json:"headline"`
	Subtext       string `json:"subtext"`
	HeadlineHindi bool   `json:"headline_hindi"`
	SubtextHindi  bool   `json:"subtext_hindi"`
	Color         string `json:"color"`
	Shadow        *bool  `json:"shadow"`

	LogoB64    []byte `json:"logo_b64"`
	ProductB64 []byte `json:"product_b64"`

	LogoScalePct    int    `json:"logo_scale_pct"`
	LogoPosition    string `json:"logo_position"`
	ProductScalePct int    `json:"product_scale_pct"`
	ProductPosition string `json:"product_position"`

	DecorationCount int    `json:"decoration_count"`
	QRText          string `json:"qr_text"`
	Seed            *int64 `json:"seed"`
	Save            bool   `json:"save"`
}

// ComposeInfo reports non-fatal degradations of a finished render.
type ComposeInfo struct {
	UsedFallback bool
	SavedAs      string
}

// Generator owns one banner pipeline: background, decorations, product,
// logo, QR, text, export. External collaborators degrade to safe defaults,
// so Compose only errors when the final PNG cannot be produced at all.
type Generator struct {
	cfg        *config.Config
	background *background.Client
	translator *translate.Client
	catalog    *assets.Catalog
	store      *store.Store
	log        zerolog.Logger
}

func NewGenerator(cfg *config.Config, log zerolog.Logger) *Generator {
	return &Generator{
		cfg: cfg,
		background: background.New(background.Options{
			APIURL:  cfg.AIImageAPIURL,
			APIKey:  cfg.AIImageAPIKey,
			Timeout: cfg.AIImageTimeout,
		}),
		translator: translate.New(translate.Options{APIURL: cfg.TranslateAPIURL}),
		catalog:    assets.NewCatalog(cfg.AssetsDir),
		store:      store.New(cfg.OutputDir),
		log:        log,
	}
}

// Compose runs the full compositing pass and returns the flattened banner
// as PNG bytes.
func (g *Generator) Compose(ctx context.Context, req BannerRequest) ([]byte, ComposeInfo, error) {
	var info ComposeInfo
	w, h := clampSize(req.Width, req.Height)

	prompt := req.Prompt
	if prompt == "" && req.UsePreset {
		prompt = assets.PresetPrompt(req.Festival)
	}
	canvas, usedFallback := g.background.GenerateOrFallback(ctx, prompt, w, h)
	info.UsedFallback = usedFallback
	if usedFallback {
		g.log.Debug().Str("festival", req.Festival).Msg("background generator unavailable, using gradient fallback")
	}

	rng := rand.New(rand.NewSource(seedOf(req.Seed)))
	count := req.DecorationCount
	if count <= 0 {
		count = defaultDecorationCount
	}
	canvas = banner.ScatterDecorations(canvas, g.catalog.DecorationFiles(req.Festival), count, rng)

	canvas = g.placeProduct(canvas, req, w)
	canvas = g.placeLogo(canvas, req, w)
	canvas = g.placeQR(canvas, req, w)
	g.drawText(ctx, canvas, req, w, h)

	flat := banner.Flatten(canvas)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, flat, imaging.PNG); err != nil {
		return nil, info, fmt.Errorf("encode banner: %w", err)
	}

	if req.Save {
		name, err := g.store.SavePNG(buf.Bytes(), req.Festival)
		if err != nil {
			g.log.Warn().Err(err).Msg("saving banner failed")
		} else {
			info.SavedAs = name
		}
	}
	return buf.Bytes(), info, nil
}

func (g *Generator) placeProduct(canvas *image.NRGBA, req BannerRequest, w int) *image.NRGBA {
	var product image.Image
	if len(req.ProductB64) > 0 {
		img, err := assets.DecodeImage(req.ProductB64)
		if err != nil {
			g.log.Warn().Err(err).Msg("uploaded product image unreadable, skipping")
		} else {
			product = img
		}
	} else if path, ok := banner.PickBestAsset(g.catalog.ProductCandidates()); ok {
		img, err := assets.LoadImage(path)
		if err == nil {
			product = img
		}
	}
	if product == nil {
		return canvas
	}

	var anchor banner.Anchor
	if req.ProductPosition != "" {
		anchor = banner.ParseAnchor(req.ProductPosition, banner.RightCenter)
	} else {
		anchor = banner.ChooseSide(canvas)
	}
	scale := clampPct(req.ProductScalePct, 15, 70, defaultProductScalePct)
	return banner.PlaceOverlay(canvas, product, w*scale/100, anchor, banner.DefaultMargin)
}

func (g *Generator) placeLogo(canvas *image.NRGBA, req BannerRequest, w int) *image.NRGBA {
	if len(req.LogoB64) == 0 {
		return canvas
	}
	logo, err := assets.DecodeImage(req.LogoB64)
	if err != nil {
		g.log.Warn().Err(err).Msg("uploaded logo unreadable, skipping")
		return canvas
	}
	anchor := banner.ParseAnchor(req.LogoPosition, banner.TopLeft)
	scale := clampPct(req.LogoScalePct, 5, 40, defaultLogoScalePct)
	return banner.PlaceOverlay(canvas, logo, w*scale/100, anchor, banner.DefaultMargin)
}

func (g *Generator) placeQR(canvas *image.NRGBA, req BannerRequest, w int) *image.NRGBA {
	if req.QRText == "" {
		return canvas
	}
	qr, err := banner.QRImage(req.QRText, int(float64(w)*qrWidthFrac))
	if err != nil {
		g.log.Warn().Err(err).Msg("qr generation failed, skipping")
		return canvas
	}
	return banner.PlaceOverlay(canvas, qr, int(float64(w)*qrWidthFrac), banner.BottomRight, banner.DefaultMargin)
}

func (g *Generator) drawText(ctx context.Context, canvas *image.NRGBA, req BannerRequest, w, h int) {
	headline := req.Headline
	if req.HeadlineHindi {
		headline = g.translator.ToHindi(ctx, headline)
	}
	subtext := req.Subtext
	if req.SubtextHindi {
		subtext = g.translator.ToHindi(ctx, subtext)
	}

	// Taller canvases leave the headline a bit higher.
	headlineY := 0.22
	if h >= w {
		headlineY = 0.18
	}
	shadow := true
	if req.Shadow != nil {
		shadow = *req.Shadow
	}

	banner.DrawTextBlock(canvas, banner.TextBlock{
		Text:      headline,
		YFraction: headlineY,
		SizeRatio: headlineRatio,
		HexColor:  req.Color,
		Shadow:    shadow,
		Script:    scriptFor(req.HeadlineHindi),
		FontPath:  g.fontPath(req.HeadlineHindi),
	})
	banner.DrawTextBlock(canvas, banner.TextBlock{
		Text:      subtext,
		YFraction: headlineY + 0.12,
		SizeRatio: subtextRatio,
		HexColor:  req.Color,
		Shadow:    shadow,
		Script:    scriptFor(req.SubtextHindi),
		FontPath:  g.fontPath(req.SubtextHindi),
	})
}

func (g *Generator) fontPath(hindi bool) string {
	if hindi {
		return g.cfg.FontPathDevanagari
	}
	return g.cfg.FontPathLatin
}

func scriptFor(hindi bool) banner.Script {
	if hindi {
		return banner.ScriptDevanagari
	}
	return banner.ScriptLatin
}

func clampSize(w, h int) (int, int) {
	if w <= 0 {
		w = defaultWidth
	} else if w < minDimension {
		w = minDimension
	}
	if h <= 0 {
		h = defaultHeight
	} else if h < minDimension {
		h = minDimension
	}
	return w, h
}

func clampPct(v, lo, hi, def int) int {
	if v == 0 {
		return def
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func seedOf(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}
