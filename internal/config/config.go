package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration loaded from environment variables.
// Every key is optional: with nothing set the service still produces
// banners, using the gradient fallback background and untranslated text.
type Config struct {
	AppEnv string
	Port   string

	AIImageAPIURL  string
	AIImageAPIKey  string
	AIImageTimeout time.Duration

	TranslateAPIURL string

	AssetsDir string
	OutputDir string

	FontPathLatin      string
	FontPathDevanagari string
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		AIImageAPIURL:      os.Getenv("AI_IMAGE_API_URL"),
		AIImageAPIKey:      os.Getenv("AI_IMAGE_API_KEY"),
		AIImageTimeout:     time.Second * time.Duration(getEnvInt("AI_IMAGE_TIMEOUT_SECONDS", 60)),
		TranslateAPIURL:    os.Getenv("TRANSLATE_API_URL"),
		AssetsDir:          getEnv("ASSETS_DIR", "assets"),
		OutputDir:          getEnv("OUTPUT_DIR", "out"),
		FontPathLatin:      os.Getenv("FONT_PATH_LATIN"),
		FontPathDevanagari: os.Getenv("FONT_PATH_DEVANAGARI"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
