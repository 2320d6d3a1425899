package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds everything the run needs. Values come from the environment
// with sensible defaults; CLI flags override on top.
type Config struct {
	// Input/output
	SourcePath string
	OutDir     string
	Prefix     string

	// Marker detection heuristics. The defaults are tuned for manuals with
	// roughly thirty pages of front matter; they do not necessarily
	// generalize, which is why they are configuration rather than constants.
	StartScanPage int // first page to scan, zero-based
	HeadWindow    int // keyword must appear within this many leading characters
	ShortPageLen  int // ...or the page text must be shorter than this
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		SourcePath:    os.Getenv("CHAPSPLIT_SOURCE"),
		OutDir:        envOr("CHAPSPLIT_OUT_DIR", "chapters"),
		Prefix:        os.Getenv("CHAPSPLIT_PREFIX"),
		StartScanPage: envInt("CHAPSPLIT_START_PAGE", 30),
		HeadWindow:    envInt("CHAPSPLIT_HEAD_WINDOW", 100),
		ShortPageLen:  envInt("CHAPSPLIT_SHORT_PAGE_LEN", 500),
	}
}

// Validate checks the configuration after flag overrides have been applied.
func (c Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("source PDF path is required (--source or CHAPSPLIT_SOURCE)")
	}
	if c.StartScanPage < 0 {
		return fmt.Errorf("start scan page must not be negative")
	}
	if c.HeadWindow <= 0 {
		return fmt.Errorf("head window must be positive")
	}
	if c.ShortPageLen <= 0 {
		return fmt.Errorf("short page length must be positive")
	}
	return nil
}

// OutputPrefix returns the configured filename prefix, falling back to the
// source file's base name without extension.
func (c Config) OutputPrefix() string {
	if c.Prefix != "" {
		return c.Prefix
	}
	base := filepath.Base(c.SourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
