package model

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ekisa-team/tensorbridge/internal/backend"
	"github.com/ekisa-team/tensorbridge/internal/backend/portable"
	"github.com/ekisa-team/tensorbridge/internal/config"
	"github.com/ekisa-team/tensorbridge/internal/container"
	"github.com/ekisa-team/tensorbridge/internal/envvar"
	"github.com/ekisa-team/tensorbridge/internal/model/source"
	"github.com/ekisa-team/tensorbridge/internal/xfs"
)

// Manager orchestrates container lifecycle from configuration.
type Manager struct {
	registry *Registry
	mu       sync.RWMutex
}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{
		registry: NewRegistry(),
	}
}

// Registry returns the container registry.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadFromConfig builds containers from the config and updates the registry.
//
// Only portable-graph containers can be described in configuration: their
// artifact is a file. In-process graphs are constructed programmatically by
// the conversion pipeline and registered through the registry directly.
func (m *Manager) LoadFromConfig(ctx context.Context, cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	artifactsPath := resolveArtifactsPath(cfg)
	if err := source.EnsureArtifactsDirectory(artifactsPath); err != nil {
		return fmt.Errorf("failed to prepare artifacts directory %s: %w", artifactsPath, err)
	}

	loadedKeys := make(map[string]bool)
	for id := range cfg.Containers {
		cc := cfg.Containers[id]

		instance := NewInstance(&cc, id)
		c, err := m.build(ctx, &cc, artifactsPath)
		if err != nil {
			instance.SetError(err)
			m.registry.Set(instance)
			return fmt.Errorf("failed to build container %s: %w", id, err)
		}

		instance.SetContainer(c)
		loadedKeys[id] = true
		m.registry.Set(instance)

		slog.Info("Container loaded into registry", "container_id", id, "task", cc.Task, "backend", cc.Backend)
	}

	// Drop containers removed from the config (if any)
	for _, instance := range m.registry.List() {
		if !loadedKeys[instance.ID] {
			if err := m.registry.Delete(instance.ID); err != nil {
				slog.Error("Failed to close removed container", "container_id", instance.ID, "error", err)
			}
			slog.Info("Container removed from registry", "container_id", instance.ID)
		}
	}

	return nil
}

// build assembles one portable container from its configuration.
func (m *Manager) build(ctx context.Context, cc *config.ContainerConfig, artifactsPath string) (container.Container, error) {
	mode, err := container.ParseTaskMode(cc.Task)
	if err != nil {
		return nil, err
	}

	if kind := backend.Kind(cc.Backend); kind != backend.KindPortable {
		return nil, fmt.Errorf("%w: %q cannot be built from configuration", backend.ErrUnknownKind, cc.Backend)
	}

	artifactPath, err := m.resolveArtifact(ctx, cc, artifactsPath)
	if err != nil {
		return nil, err
	}

	artifact, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", artifactPath, err)
	}

	res := backend.ResourceConfig{
		Threads:   cc.Resources.Threads,
		BatchSize: cc.Resources.BatchSize,
	}

	b, err := portable.New(artifact, res)
	if err != nil {
		return nil, err
	}

	extra := make(container.ExtraConfig, len(cc.Extra))
	for k, v := range cc.Extra {
		extra[k] = v
	}

	c, err := container.New(mode, b, res, extra)
	if err != nil {
		// Construction invariant violations surface before the backend ever
		// runs; release the parsed session.
		if cerr := b.Close(); cerr != nil {
			slog.Error("Failed to close backend session", "error", cerr)
		}
		return nil, err
	}

	return c, nil
}

// resolveArtifact returns the local path of the serialized artifact,
// downloading it from its source first when one is configured.
func (m *Manager) resolveArtifact(ctx context.Context, cc *config.ContainerConfig, artifactsPath string) (string, error) {
	if cc.Artifact.Path != "" {
		return xfs.ExpandTilde(cc.Artifact.Path), nil
	}

	artifactSource, err := cc.Artifact.GetSource()
	if err != nil {
		return "", fmt.Errorf("failed to get artifact source: %w", err)
	}

	downloader, err := source.GetDownloader(ctx, artifactSource.Type())
	if err != nil {
		return "", fmt.Errorf("failed to get downloader: %w", err)
	}

	downloadPath, _, err := downloader.Download(ctx, &cc.Artifact, artifactsPath)
	if err != nil {
		return "", fmt.Errorf("failed to download artifact into %s: %w", artifactsPath, err)
	}

	if cc.Artifact.File == "" {
		return "", fmt.Errorf("artifact source for %s does not name the file to load", downloadPath)
	}

	return filepath.Join(downloadPath, cc.Artifact.File), nil
}

// resolveArtifactsPath returns the path to the artifacts directory.
// Precedence:
// 1. TENSORBRIDGE_ARTIFACTS_PATH environment variable.
// 2. ArtifactsDir field in the config.
// 3. Default artifacts path.
func resolveArtifactsPath(cfg *config.Config) string {
	if p := os.Getenv(envvar.TensorbridgeArtifactsPath); p != "" {
		return xfs.ExpandTilde(p)
	}
	if cfg.Storage.ArtifactsDir != "" {
		return xfs.ExpandTilde(cfg.Storage.ArtifactsDir)
	}
	return xfs.ExpandTilde(config.DefaultArtifactsPath())
}
