package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/fracgrid/internal/grid"
)

var (
	// Global flags
	jsonOutput bool
	yamlOutput bool
	flags      globalFlags

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// globalFlags holds the persistent flags that override configuration.
type globalFlags struct {
	configPath string
	resolution string
	size       int
	improper   bool
	overflow   string
	lenient    bool
	plain      bool
	verbose    bool
}

// rootCmd is the root command for fracgrid.
var rootCmd = &cobra.Command{
	Use:     "fracgrid",
	Version: "dev",
	Short:   "Visual proof of fraction addition on a unit grid",
	Long: `fracgrid shows why two fractions with unlike denominators add up the way they do.

It maps an expression such as "1/4 + 2/3" onto a shared grid whose cells are
sized by the common denominator, then draws each fraction and their sum.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	pf.BoolVar(&yamlOutput, "yaml", false, "Output in YAML format")
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.fracgrid/config.yaml)")
	pf.StringVar(&flags.resolution, "resolution", "", "Working resolution: "+joinNames(grid.ResolutionModes()))
	pf.IntVar(&flags.size, "size", 0, "Cell count for --resolution fixed")
	pf.BoolVar(&flags.improper, "improper", false, "Allow numerators larger than their denominators")
	pf.StringVar(&flags.overflow, "overflow", "", "Sums above one: "+joinNames(grid.OverflowPolicies()))
	pf.BoolVar(&flags.lenient, "lenient", false, "Accept a bare whole number as the second addend")
	pf.BoolVar(&flags.plain, "plain", false, "Draw cells as letters instead of colors")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml")
	_ = rootCmd.RegisterFlagCompletionFunc("resolution", completeNames(grid.ResolutionModes()))
	_ = rootCmd.RegisterFlagCompletionFunc("overflow", completeNames(grid.OverflowPolicies()))
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if flags.plain {
			color.NoColor = true
		}
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "visualize",
		Title: "Visualize:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "configuration",
		Title: "Configuration:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the fracgrid CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for fracgrid for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Visualize commands
	showCmd.GroupID = "visualize"
	checkCmd.GroupID = "visualize"
	interactiveCmd.GroupID = "visualize"
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(interactiveCmd)

	// Configuration commands
	configCmd.GroupID = "configuration"
	rootCmd.AddCommand(configCmd)
}

// joinNames lists option values for flag help, e.g. "lcm, product or fixed".
func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	if len(names) < 2 {
		return strings.Join(names, "")
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// completeNames offers option values as shell completions.
func completeNames[T ~string](values []T) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(values))
		for i, v := range values {
			names[i] = string(v)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
