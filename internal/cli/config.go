package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/fracgrid/internal/config"
	"github.com/danieljhkim/fracgrid/internal/fsops"
)

var (
	configFormat string
	configForce  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging the config file, FRACGRID_*
environment variables and command-line flags.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		format, err := parseFormat(configFormat)
		if err != nil {
			return err
		}
		switch {
		case jsonOutput:
			format = config.FormatJSON
		case yamlOutput:
			format = config.FormatYAML
		}

		data, err := config.Encode(cfg, format)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return fmt.Errorf("failed to get config paths: %w", err)
		}

		format, err := parseFormat(configFormat)
		if err != nil {
			return err
		}
		if format == config.FormatJSON {
			return fmt.Errorf("config init writes yaml or toml, not %s", format)
		}
		target := paths.Config
		if format == config.FormatTOML {
			target = paths.ConfigTOML
		}

		path, err := writeDefaultConfig(fsops.NewRealFS(), paths, target, format, configForce)
		if err != nil {
			return err
		}
		if path == "" {
			PrintWarning(cmd.OutOrStdout(), fmt.Sprintf("%s already exists (use --force to overwrite)", target))
			return nil
		}
		PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "List the config file search paths",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := config.DefaultPaths()
		if err != nil {
			return fmt.Errorf("failed to get config paths: %w", err)
		}

		items := []string{paths.Config, paths.ConfigTOML}
		if flags.configPath != "" {
			items = append([]string{flags.configPath}, items...)
		}
		if structuredOutput() {
			return outputStructured(cmd.OutOrStdout(), items)
		}
		PrintList(cmd.OutOrStdout(), items, 0)
		return nil
	},
}

func parseFormat(s string) (config.Format, error) {
	for _, f := range config.Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want %s)", s, joinNames(config.Formats()))
}

// writeDefaultConfig writes the default configuration to target. It returns
// an empty path without writing when target exists and force is false.
func writeDefaultConfig(fs fsops.FS, paths *config.Paths, target string, format config.Format, force bool) (string, error) {
	exists, err := fs.Exists(target)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists && !force {
		return "", nil
	}

	if err := paths.EnsureDirectories(fs); err != nil {
		return "", err
	}

	data, err := config.Encode(config.Default(), format)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := fs.AtomicWrite(target, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

func init() {
	configCmd.PersistentFlags().StringVar(&configFormat, "format", string(config.FormatYAML), "Encoding: "+joinNames(config.Formats()))
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
