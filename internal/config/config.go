package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Mode selects between development and production behavior for the host
// and the asset pipeline.
type Mode int

const (
	ModeDev Mode = iota
	ModeProd
)

// Config holds the environment-driven settings for the starter host.
type Config struct {
	// Port the HTTP server listens on. Defaults to 8080.
	Port string
	// Mode is ModeDev when MICFX_DEV=1 is set, ModeProd otherwise.
	Mode Mode
	// CSSCompiler is the external utility-CSS CLI invoked by cmd/assets.
	// Defaults to "tailwindcss" resolved from PATH.
	CSSCompiler string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged first when present; missing files are not an error so
// production deployments need no .env.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        envOrDefault("PORT", "8080"),
		Mode:        modeFromEnv(),
		CSSCompiler: envOrDefault("CSS_COMPILER", "tailwindcss"),
	}
}

// IsDev reports whether the mode is development.
func (m Mode) IsDev() bool {
	return m == ModeDev
}

func modeFromEnv() Mode {
	if os.Getenv("MICFX_DEV") == "1" {
		return ModeDev
	}
	return ModeProd
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
