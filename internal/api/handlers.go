package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/youruser/bannerforge/internal/assets"
	"github.com/youruser/bannerforge/internal/banner"
	"github.com/youruser/bannerforge/internal/config"
)

type Handlers struct {
	gen *Generator
	log zerolog.Logger
}

func NewHandlers(cfg *config.Config, log zerolog.Logger) *Handlers {
	return &Handlers{
		gen: NewGenerator(cfg, log),
		log: log,
	}
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// festivals lists the supported festivals with their preset prompts.
func (h *Handlers) festivals(c *gin.Context) {
	names := assets.FestivalNames()
	presets := make([]gin.H, 0, len(names))
	for _, name := range names {
		presets = append(presets, gin.H{"name": name, "prompt": assets.PresetPrompt(name)})
	}
	c.JSON(http.StatusOK, gin.H{"festivals": presets})
}

// qr returns a standalone QR code PNG for the "text" query param.
func (h *Handlers) qr(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text query param required"})
		return
	}
	size := 400
	if s := c.Query("size"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			size = v
		}
	}
	b, err := banner.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

// generateBanner runs the full compositing pipeline and streams the result
// back as PNG.
func (h *Handlers) generateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, info, err := h.gen.Compose(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("banner composition failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if info.UsedFallback {
		c.Header("X-Banner-Background", "fallback-gradient")
	}
	if info.SavedAs != "" {
		c.Header("X-Banner-Saved", info.SavedAs)
	}
	c.Data(http.StatusOK, "image/png", png)
}
