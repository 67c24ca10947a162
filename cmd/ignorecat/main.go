// Package main provides the entry point for the ignorecat CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	return boolFlag(cmd, "json")
}

// useColor resolves --color against TTY detection on the command's stdout.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(stringFlag(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

func lookupFlag(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

func boolFlag(cmd *cobra.Command, name string) bool {
	return lookupFlag(cmd, name) == "true"
}

func stringFlag(cmd *cobra.Command, name string) string {
	return lookupFlag(cmd, name)
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the ignorecat CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignorecat",
		Short: "A catalog of .gitignore templates",
		Long: `ignorecat - A catalog of .gitignore templates.

Templates come from two places:
  - Bundled templates shipped with the binary (languages at the root,
    editors and operating systems under Global/)
  - User templates stored in the settings file

Star the templates you use most, then apply them to a repository's
.gitignore or to git's global excludes file.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'ignorecat --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if err := output.ValidateColorMode(stringFlag(cmd, "color")); err != nil {
			newPrinter(cmd).Error(err)
			return err
		}
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("settings", "", "Settings file (default: <config dir>/settings.yaml)")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, or never")
	cmd.PersistentFlags().Bool("debug", false, "Log debug details to stderr")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "catalog", Title: "Catalog Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "apply", Title: "Apply Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "settings", Title: "Settings Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newListCmd(), "catalog")
	addGroupedCommand(cmd, newShowCmd(), "catalog")

	addGroupedCommand(cmd, newApplyCmd(), "apply")
	addGroupedCommand(cmd, newDiffCmd(), "apply")

	addGroupedCommand(cmd, newStarCmd(), "settings")
	addGroupedCommand(cmd, newUnstarCmd(), "settings")
	addGroupedCommand(cmd, newUserCmd(), "settings")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
