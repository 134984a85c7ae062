// Package source fetches serialized artifacts from remote sources into the
// local artifact cache.
package source

import (
	"context"
	"fmt"
	"os"

	"github.com/ekisa-team/tensorbridge/internal/config"
)

// Downloader downloads an artifact into a target directory. It returns the
// local path, whether the artifact was already cached, and any error.
type Downloader interface {
	Download(ctx context.Context, artifact *config.ArtifactConfig, targetDir string) (string, bool, error)
}

// GetDownloader returns the downloader for a source type.
func GetDownloader(_ context.Context, sourceType config.SourceType) (Downloader, error) {
	switch sourceType {
	case config.SourceTypeHuggingFace:
		return &HuggingFaceDownloader{}, nil
	default:
		return nil, fmt.Errorf("unsupported artifact source type: %q", sourceType)
	}
}

// EnsureArtifactsDirectory creates the artifact cache directory if needed.
func EnsureArtifactsDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create artifacts directory: %w", err)
	}

	return nil
}
