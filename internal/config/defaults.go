package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigPath returns the default path for the tensorbridge config
// directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tensorbridge", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "tensorbridge")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "tensorbridge")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "tensorbridge")
		}
		return filepath.Join(home, ".config", "tensorbridge")
	}
}

// DefaultArtifactsPath returns the default path for the artifact cache
// directory.
func DefaultArtifactsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tensorbridge", "artifacts")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "tensorbridge", "artifacts")
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "tensorbridge", "artifacts")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "tensorbridge", "artifacts")
		}
		return filepath.Join(home, ".cache", "tensorbridge", "artifacts")
	}
}
