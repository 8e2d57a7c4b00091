// Package config loads game settings from a .env file and MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Renderer names
const (
	RendererEbiten = "ebiten"
	RendererTUI    = "tui"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the game's configuration values.
type Config struct {
	AssetDir     string        // Directory holding img/ and Audio/
	Renderer     string        // "ebiten" or "tui"
	Language     string        // Catalogue to load (fr, en)
	Fullscreen   bool          // Start the window fullscreen
	WindowWidth  int           // Window size when not fullscreen
	WindowHeight int           //
	TPS          int           // Game updates per second
	MoveCooldown time.Duration // Minimum time between two moves
	Seed         int64         // Maze seed, 0 for random
	AudioEnabled bool          // Play music
	MusicVolume  float64       // 0.0 - 1.0
	DumpPath     string        // F9 map dump file
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		AssetDir:     ".",
		Renderer:     RendererEbiten,
		Language:     "fr",
		Fullscreen:   true,
		WindowWidth:  1280,
		WindowHeight: 720,
		TPS:          60,
		MoveCooldown: 200 * time.Millisecond,
		AudioEnabled: true,
		MusicVolume:  0.5,
		DumpPath:     "map.txt",
	}
}

// Load reads the given .env files (".env" when none) and then the environment.
// A missing .env file is not an error; unparsable values keep their default.
func Load(files ...string) Config {
	if err := godotenv.Load(files...); err != nil {
		log.Printf(".env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from MAZE_* variables on top of Default()
func FromEnv() Config {
	cfg := Default()

	cfg.AssetDir = getEnvWithDefault("MAZE_ASSET_DIR", cfg.AssetDir)
	cfg.Renderer = strings.ToLower(getEnvWithDefault("MAZE_RENDERER", cfg.Renderer))
	cfg.Language = getEnvWithDefault("MAZE_LANG", cfg.Language)
	cfg.DumpPath = getEnvWithDefault("MAZE_DUMP_PATH", cfg.DumpPath)

	cfg.Fullscreen = getEnvAsBool("MAZE_FULLSCREEN", cfg.Fullscreen)
	cfg.AudioEnabled = getEnvAsBool("MAZE_AUDIO_ENABLED", cfg.AudioEnabled)

	cfg.WindowWidth = getEnvAsPositiveInt("MAZE_WINDOW_WIDTH", cfg.WindowWidth)
	cfg.WindowHeight = getEnvAsPositiveInt("MAZE_WINDOW_HEIGHT", cfg.WindowHeight)
	cfg.TPS = getEnvAsPositiveInt("MAZE_TPS", cfg.TPS)

	if v, ok := os.LookupEnv("MAZE_SEED"); ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = seed
		} else {
			log.Printf("Ignoring MAZE_SEED=%q: %v", v, err)
		}
	}

	if v, ok := os.LookupEnv("MAZE_MOVE_COOLDOWN"); ok {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.MoveCooldown = d
		} else {
			log.Printf("Ignoring MAZE_MOVE_COOLDOWN=%q", v)
		}
	}

	// Volume is given as 0-100 like most mixers
	if v, ok := os.LookupEnv("MAZE_MUSIC_VOLUME"); ok {
		if val, err := strconv.Atoi(v); err == nil {
			cfg.MusicVolume = clamp01(float64(val) / 100.0)
		} else {
			log.Printf("Ignoring MAZE_MUSIC_VOLUME=%q: %v", v, err)
		}
	}

	return cfg
}

// Validate checks values that flags may have overridden
func (c Config) Validate() error {
	switch c.Renderer {
	case RendererEbiten, RendererTUI:
	default:
		return fmt.Errorf("%w: renderer %q (want %s or %s)", ErrInvalidConfig, c.Renderer, RendererEbiten, RendererTUI)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	if c.MoveCooldown < 0 {
		return fmt.Errorf("%w: move cooldown %s", ErrInvalidConfig, c.MoveCooldown)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("%w: music volume %.2f", ErrInvalidConfig, c.MusicVolume)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", key, value, err)
		return defaultValue
	}
	return b
}

func getEnvAsPositiveInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Ignoring %s=%q", key, value)
		return defaultValue
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
