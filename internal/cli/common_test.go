package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/engine"
	"github.com/danieljhkim/fracgrid/internal/fraction"
	"github.com/danieljhkim/fracgrid/internal/fsops"
	"github.com/danieljhkim/fracgrid/internal/grid"
	"github.com/danieljhkim/fracgrid/internal/render"
)

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, map[string]string{"test": "value"}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	var v map[string]string
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Errorf("outputJSON() produced invalid JSON: %v", err)
	}
	if v["test"] != "value" {
		t.Errorf("outputJSON() round trip = %v", v)
	}
}

func TestOutputYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := outputYAML(&buf, map[string]int{"cells": 12}); err != nil {
		t.Fatalf("outputYAML() error = %v", err)
	}
	if buf.String() != "cells: 12\n" {
		t.Errorf("outputYAML() = %q", buf.String())
	}

	var v map[string]int
	if err := yaml.Unmarshal(buf.Bytes(), &v); err != nil || v["cells"] != 12 {
		t.Errorf("outputYAML() produced %v, err %v", v, err)
	}
}

func TestPrintFunctions(t *testing.T) {
	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	var buf bytes.Buffer
	PrintSuccess(&buf, "Success message")
	PrintWarning(&buf, "Warning message")
	PrintError(&buf, "Error message")
	PrintLabelValue(&buf, "Label", "value")
	PrintList(&buf, []string{"one", "two"}, 1)

	want := "✓ Success message\n" +
		"⚠ Warning message\n" +
		"✗ Error message\n" +
		"  Label: value\n" +
		"  • one\n  • two\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("printer output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 cells"},
		{1, "1 cell"},
		{12, "12 cells"},
	}

	for _, tt := range tests {
		if got := PrintCount(tt.count, "cell", "cells"); got != tt.want {
			t.Errorf("PrintCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Status: engine.StatusTooLarge, Err: grid.ErrTooLarge}
	if err.Error() != render.Message(engine.StatusTooLarge) {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, grid.ErrTooLarge) {
		t.Error("StatusError should unwrap to its cause")
	}
}

func TestApplyFlags(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	args := []string{"--resolution", "fixed", "--size", "24", "--improper", "--overflow", "render-excess", "--lenient"}
	if err := showCmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg := config.Default()
	applyFlags(showCmd, cfg)

	want := config.Default()
	want.Parse = fraction.ParseLenient
	want.Grid.Resolution = grid.ResolutionFixed
	want.Grid.Size = 24
	want.Grid.AllowImproper = true
	want.Grid.Overflow = grid.OverflowRenderExcess
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("applyFlags() mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyFlags_UnsetFlagsKeepConfig(t *testing.T) {
	resetFlags()
	t.Cleanup(resetFlags)

	if err := checkCmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	cfg := config.Default()
	cfg.Grid.Resolution = grid.ResolutionProduct
	cfg.Parse = fraction.ParseLenient
	applyFlags(checkCmd, cfg)

	if cfg.Grid.Resolution != grid.ResolutionProduct || cfg.Parse != fraction.ParseLenient {
		t.Errorf("applyFlags() changed unset values: %+v", cfg)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	for _, key := range []string{"FRACGRID_PARSE", "FRACGRID_RESOLUTION", "FRACGRID_SIZE", "FRACGRID_IMPROPER", "FRACGRID_OVERFLOW"} {
		t.Setenv(key, "")
	}
	fs := fsops.NewMemFS()
	paths := config.PathsAt("/home/user/.fracgrid")

	path, err := writeDefaultConfig(fs, paths, paths.ConfigTOML, config.FormatTOML, false)
	if err != nil {
		t.Fatalf("writeDefaultConfig() error = %v", err)
	}
	if path != paths.ConfigTOML {
		t.Errorf("path = %q, want %q", path, paths.ConfigTOML)
	}
	if !fs.Dirs[paths.Root] {
		t.Error("root directory was not created")
	}

	loaded, err := config.Load(fs, paths, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(config.Default(), loaded); diff != "" {
		t.Errorf("written config mismatch (-want +got):\n%s", diff)
	}

	fs.Files[paths.ConfigTOML] = []byte("# edited\n")
	path, err = writeDefaultConfig(fs, paths, paths.ConfigTOML, config.FormatTOML, false)
	if err != nil || path != "" {
		t.Errorf("writeDefaultConfig() = %q, %v; want no write", path, err)
	}
	if string(fs.Files[paths.ConfigTOML]) != "# edited\n" {
		t.Error("existing config was overwritten without force")
	}

	if _, err := writeDefaultConfig(fs, paths, paths.ConfigTOML, config.FormatTOML, true); err != nil {
		t.Fatalf("writeDefaultConfig(force) error = %v", err)
	}
	if string(fs.Files[paths.ConfigTOML]) == "# edited\n" {
		t.Error("force did not overwrite the config")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "toml", "json"} {
		if _, err := parseFormat(s); err != nil {
			t.Errorf("parseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := parseFormat("xml"); err == nil {
		t.Error("parseFormat(xml) should fail")
	}
}
