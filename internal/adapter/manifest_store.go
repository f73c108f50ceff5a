package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	m "incov.dev/pkg/incov/internal/model"
)

// ManifestStore persists the filtered analyzer inputs so external tooling
// can pick them up.
type ManifestStore interface {
	SaveManifest(path m.Path, manifest m.Manifest) error
	LoadManifest(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore writes manifests as YAML documents.
type YAMLManifestStore struct{}

// NewYAMLManifestStore constructs a YAMLManifestStore.
func NewYAMLManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// SaveManifest writes the manifest, creating parent directories as needed.
func (s *YAMLManifestStore) SaveManifest(path m.Path, manifest m.Manifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create manifest directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadManifest reads a manifest previously written by SaveManifest.
func (s *YAMLManifestStore) LoadManifest(path m.Path) (m.Manifest, error) {
	var manifest m.Manifest

	// #nosec G304 - path is provided by the user on purpose
	data, err := os.ReadFile(string(path))
	if err != nil {
		return manifest, fmt.Errorf("read manifest %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	return manifest, nil
}
