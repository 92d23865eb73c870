// Package config manages fracgrid configuration and filesystem paths.
//
// Configuration is read from ~/.fracgrid/config.yaml or config.toml (the root
// can be moved with FRACGRID_ROOT), then overridden by FRACGRID_* environment
// variables, then by command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/fracgrid/internal/fsops"
)

// Paths contains all the filesystem paths used by fracgrid.
type Paths struct {
	// Root is the base directory for fracgrid data (default: ~/.fracgrid)
	Root string

	// Config is the path to the YAML config file
	Config string

	// ConfigTOML is the path to the TOML config file, used when Config is absent
	ConfigTOML string
}

// DefaultPaths returns the default paths for fracgrid.
// Paths can be overridden with environment variables:
// - FRACGRID_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv("FRACGRID_ROOT")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".fracgrid")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:       root,
		Config:     filepath.Join(root, "config.yaml"),
		ConfigTOML: filepath.Join(root, "config.toml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories(fs fsops.FS) error {
	if err := fs.MkdirAll(p.Root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.Root, err)
	}
	return nil
}
