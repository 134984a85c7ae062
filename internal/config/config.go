package config

import (
	"errors"
)

// SourceType represents the type of an artifact source.
type SourceType string

const (
	// SourceTypeHuggingFace represents a Hugging Face repository source.
	SourceTypeHuggingFace SourceType = "huggingface"
)

// Config holds the main configuration for the application.
type Config struct {
	Version    string                     `json:"version"           yaml:"version"`
	Storage    StorageConfig              `json:"storage,omitempty" yaml:"storage,omitempty"`
	Containers map[string]ContainerConfig `json:"containers"        yaml:"containers"`
}

// StorageConfig holds configuration for the artifact cache directory.
type StorageConfig struct {
	ArtifactsDir string `json:"artifacts_dir,omitempty" yaml:"artifacts_dir,omitempty"`
}

// ContainerConfig describes one prediction container: which artifact to wrap,
// its task mode and backend, the execution resources fixed at construction,
// and the opaque extra entries handed through from the conversion pipeline.
type ContainerConfig struct {
	Artifact  ArtifactConfig     `json:"artifact"            yaml:"artifact"`
	Task      string             `json:"task"                yaml:"task"`
	Backend   string             `json:"backend"             yaml:"backend"`
	Resources ResourcesConfig    `json:"resources,omitempty" yaml:"resources,omitempty"`
	Extra     map[string]float64 `json:"extra,omitempty"     yaml:"extra,omitempty"`
}

// ResourcesConfig holds the execution resources applied to a backend session
// before first use.
type ResourcesConfig struct {
	Threads   int `json:"threads,omitempty"    yaml:"threads,omitempty"`
	BatchSize int `json:"batch_size,omitempty" yaml:"batch_size,omitempty"`
}

// ArtifactConfig locates the serialized artifact: a local file path, or a
// downloadable source plus the file inside it (only one source should be set).
type ArtifactConfig struct {
	Path        string             `json:"path,omitempty"        yaml:"path,omitempty"`
	File        string             `json:"file,omitempty"        yaml:"file,omitempty"`
	HuggingFace *HuggingFaceSource `json:"huggingface,omitempty" yaml:"huggingface,omitempty"`
}

// -------------------------
// Source definitions
// -------------------------

// ArtifactSource represents a downloadable source for an artifact.
type ArtifactSource interface {
	Type() SourceType
}

// HuggingFaceSource represents a Hugging Face repository source.
type HuggingFaceSource struct {
	Repo          string   `json:"repo"                     yaml:"repo"`
	Revision      string   `json:"revision,omitempty"       yaml:"revision,omitempty"`
	RepoType      string   `json:"repo_type,omitempty"      yaml:"repo_type,omitempty"`
	Token         string   `json:"token,omitempty"          yaml:"token,omitempty"`
	Include       []string `json:"include,omitempty"        yaml:"include,omitempty"`
	Exclude       []string `json:"exclude,omitempty"        yaml:"exclude,omitempty"`
	MaxWorkers    int      `json:"max_workers,omitempty"    yaml:"max_workers,omitempty"`
	ForceDownload bool     `json:"force_download,omitempty" yaml:"force_download,omitempty"`
}

// Type returns the Hugging Face source type.
func (h HuggingFaceSource) Type() SourceType {
	return SourceTypeHuggingFace
}

// GetSource returns the active downloadable source for the artifact, if any.
func (a *ArtifactConfig) GetSource() (ArtifactSource, error) {
	if a.HuggingFace != nil {
		return *a.HuggingFace, nil
	}

	return nil, errors.New("no source configured for artifact")
}
