// Package build orchestrates the external utility-CSS compiler. The compiler
// itself (class scanning, stylesheet generation) is third-party tooling; this
// package only invokes it, content-hashes its output, and records the result
// in the asset manifest.
package build

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/micfx/starter/internal/assets"
)

const (
	// InputStylesheet is the source sheet handed to the compiler. It carries
	// the framework imports the compiler expands.
	InputStylesheet = "internal/views/styles/input.css"
	// TemplateGlob tells the compiler which templates to scan for class names.
	TemplateGlob = "internal/views/templates/*.html"
)

// Engine runs one asset build end to end.
type Engine struct {
	compiler string
	distDir  string
}

// NewEngine builds an engine invoking the given compiler binary and writing
// into the given dist directory.
func NewEngine(compiler, distDir string) *Engine {
	return &Engine{compiler: compiler, distDir: distDir}
}

// Result describes the artifacts of a successful build.
type Result struct {
	// Stylesheet is the hashed file name written into the dist directory.
	Stylesheet string
	// Href is the public path recorded in the manifest.
	Href string
	// Bytes is the size of the compiled stylesheet.
	Bytes int
}

// Run compiles the stylesheet, replaces any previous build, and rewrites the
// manifest. The dist directory is created if missing.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if _, err := exec.LookPath(e.compiler); err != nil {
		return nil, fmt.Errorf("css compiler %q not found: %w", e.compiler, err)
	}

	if err := os.MkdirAll(e.distDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dist dir: %w", err)
	}

	tmp, err := os.CreateTemp("", "micfx-css-*.css")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp output: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	cmd := exec.CommandContext(ctx, e.compiler,
		"--input", InputStylesheet,
		"--content", TemplateGlob,
		"--output", tmpPath,
		"--minify",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("css compiler failed: %w\n%s", err, stderr.String())
	}

	content, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read compiler output: %w", err)
	}

	hashed := assets.HashedName("app.css", content)

	if err := e.pruneStale(hashed); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(e.distDir, hashed), content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write stylesheet: %w", err)
	}

	href := "/dist/" + hashed
	if err := e.writeManifest(map[string]string{"app.css": href}); err != nil {
		return nil, err
	}

	return &Result{Stylesheet: hashed, Href: href, Bytes: len(content)}, nil
}

// pruneStale removes previous hashed builds of the stylesheet so the dist
// directory only ever holds the current one.
func (e *Engine) pruneStale(keep string) error {
	entries, err := os.ReadDir(e.distDir)
	if err != nil {
		return fmt.Errorf("failed to read dist dir: %w", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == keep {
			continue
		}
		if strings.HasPrefix(name, "app-") && strings.HasSuffix(name, ".css") {
			if err := os.Remove(filepath.Join(e.distDir, name)); err != nil {
				return fmt.Errorf("failed to remove stale asset %s: %w", name, err)
			}
		}
	}
	return nil
}

func (e *Engine) writeManifest(entries map[string]string) error {
	data, err := json.MarshalIndent(assets.Manifest{Entries: entries}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	path := filepath.Join(e.distDir, assets.ManifestFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
