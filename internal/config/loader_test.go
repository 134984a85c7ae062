package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../schemas/tensorbridge.v1.schema.json"

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
version: "1"
storage:
  artifacts_dir: /tmp/artifacts
containers:
  churn-classifier:
    artifact:
      path: /models/churn.graph
    task: classifier
    backend: portable
    resources:
      threads: 2
      batch_size: 4096
    extra:
      score_shift: -0.1
      score_offset: 2.5
`)

	cfg, err := LoadAndValidate(path, schemaPath)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "/tmp/artifacts", cfg.Storage.ArtifactsDir)

	c, ok := cfg.Containers["churn-classifier"]
	require.True(t, ok)
	assert.Equal(t, "classifier", c.Task)
	assert.Equal(t, "portable", c.Backend)
	assert.Equal(t, "/models/churn.graph", c.Artifact.Path)
	assert.Equal(t, 2, c.Resources.Threads)
	assert.Equal(t, 4096, c.Resources.BatchSize)
	assert.Equal(t, -0.1, c.Extra["score_shift"])
	assert.Equal(t, 2.5, c.Extra["score_offset"])
}

func TestLoadAndValidate_HuggingFaceSource(t *testing.T) {
	path := writeConfig(t, `
version: "1"
containers:
  fraud-detector:
    artifact:
      huggingface:
        repo: acme/fraud-detector
        revision: main
      file: model.graph
    task: anomaly_detector
    backend: portable
`)

	cfg, err := LoadAndValidate(path, schemaPath)
	require.NoError(t, err)

	c := cfg.Containers["fraud-detector"]
	require.NotNil(t, c.Artifact.HuggingFace)
	assert.Equal(t, "acme/fraud-detector", c.Artifact.HuggingFace.Repo)
	assert.Equal(t, "model.graph", c.Artifact.File)
}

func TestLoadAndValidate_RejectsUnknownTask(t *testing.T) {
	path := writeConfig(t, `
version: "1"
containers:
  bad:
    artifact:
      path: /models/m.graph
    task: clusterer
    backend: portable
`)

	_, err := LoadAndValidate(path, schemaPath)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadAndValidate_RejectsUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
version: "1"
containers:
  bad:
    artifact:
      path: /models/m.graph
    task: regressor
    backend: native
`)

	_, err := LoadAndValidate(path, schemaPath)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "absent.yaml"), schemaPath)
	assert.ErrorContains(t, err, "failed to read config")
}
