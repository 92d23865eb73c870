package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/fsops"
	"github.com/danieljhkim/fracgrid/internal/hash"
	"github.com/danieljhkim/fracgrid/internal/render"
)

// testRoot is the config root used by every pipeline.
const testRoot = "/fracgrid"

// pipeline wires config loading, the engine and a plain renderer the same
// way the CLI does, but over an in-memory filesystem.
type pipeline struct {
	fs       *fsops.MemFS
	cfg      *config.Config
	engine   *engine.Engine
	renderer *render.Renderer
}

// clearEnv blanks every FRACGRID_* override for the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FRACGRID_PARSE", "FRACGRID_RESOLUTION", "FRACGRID_SIZE", "FRACGRID_IMPROPER", "FRACGRID_OVERFLOW"} {
		t.Setenv(key, "")
	}
}

// newPipeline builds a pipeline. files maps names under testRoot to contents.
func newPipeline(t *testing.T, files map[string]string) *pipeline {
	t.Helper()
	clearEnv(t)

	fs := fsops.NewMemFS()
	paths := config.PathsAt(testRoot)
	if err := paths.EnsureDirectories(fs); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}
	for name, data := range files {
		if err := fs.AtomicWrite(filepath.Join(testRoot, name), []byte(data), 0644); err != nil {
			t.Fatalf("AtomicWrite(%s) error = %v", name, err)
		}
	}

	cfg, err := config.Load(fs, paths, "")
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}

	eng, err := engine.New(cfg, hash.NewSHA256Hasher(), nil)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}

	var out bytes.Buffer
	return &pipeline{
		fs:       fs,
		cfg:      cfg,
		engine:   eng,
		renderer: render.New(&out, cfg.Theme, render.WithPlain(true)),
	}
}

// run visualizes expr and renders the result.
func (p *pipeline) run(t *testing.T, expr string) (*engine.VisualizeResult, string) {
	t.Helper()
	result, err := p.engine.Visualize(context.Background(), &engine.VisualizeRequest{Expression: expr})
	if result == nil {
		t.Fatalf("Visualize(%q) returned no result: %v", expr, err)
	}
	return result, p.renderer.Render(result)
}
