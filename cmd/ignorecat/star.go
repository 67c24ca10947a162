package main

import (
	"github.com/spf13/cobra"
)

// newStarCmd creates the star command.
func newStarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "star <name>",
		Short: "Star a template",
		Long: `Star a template so it is listed with the starred classification.

Examples:
  ignorecat star Go
  ignorecat list --starred`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStar(cmd, args[0], true)
		},
	}
}

// newUnstarCmd creates the unstar command.
func newUnstarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstar <name>",
		Short: "Remove a template's star",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStar(cmd, args[0], false)
		},
	}
}

func runStar(cmd *cobra.Command, name string, star bool) error {
	printer := newPrinter(cmd)

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	// Unstarring accepts names that no longer resolve, so stale stars can
	// be cleaned up.
	target := a.catalog.StarredName(name)
	if star {
		tmpl, err := a.lookupTemplate(name)
		if err != nil {
			printer.Error(err)
			return err
		}
		target = tmpl.Name
	}

	update := a.settings.Star
	if !star {
		update = a.settings.Unstar
	}
	changed, err := update(target)
	if err != nil {
		err = settingsError(err)
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"name":    target,
		"starred": star,
		"changed": changed,
		"message": starMessage(target, star, changed),
	})
}

func starMessage(name string, star, changed bool) string {
	switch {
	case star && changed:
		return "Starred " + name
	case star:
		return name + " is already starred"
	case changed:
		return "Unstarred " + name
	default:
		return name + " is not starred"
	}
}
