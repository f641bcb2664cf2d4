package assets

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestFile is the name of the manifest written by the asset pipeline.
const ManifestFile = "manifest.json"

// DefaultDistDir is where cmd/assets writes compiled assets. The directory is
// committed so the embedded filesystem always has content to serve. The path
// is relative to the working directory: dev mode (MICFX_DEV=1) and cmd/assets
// expect to be launched from the repository root, the same way the asset
// build locates the view templates. Production serves the embedded copy and
// does not depend on the working directory.
const DefaultDistDir = "internal/assets/dist"

// Manifest maps logical asset names (app.css) to the hashed hrefs emitted by
// the asset pipeline (/dist/app-4f9c21ab.css).
type Manifest struct {
	Entries map[string]string `json:"entries"`
}

// ParseManifest decodes a manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest from the given filesystem.
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// LoadManifestEmbedded loads the manifest compiled into the binary.
func LoadManifestEmbedded() (*Manifest, error) {
	return LoadManifest(distFS, "dist/"+ManifestFile)
}

// LoadManifestFromDir loads the manifest from an on-disk dist directory.
func LoadManifestFromDir(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}
