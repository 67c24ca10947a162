package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/catalog"
	"github.com/gorewood/ignorecat/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a template",
		Long: `Print the content of a template.

Names match exactly first, then ignoring case.

Examples:
  ignorecat show Go
  ignorecat show macos --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, name string) error {
	printer := newPrinter(cmd)

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := a.lookupTemplate(name)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(tmpl)
	}
	outputShowHuman(printer, tmpl)
	return nil
}

func outputShowHuman(printer *output.Printer, tmpl catalog.Template) {
	if printer.IsTTY() {
		printer.Section(tmpl.Name)
		printer.KeyValue("Kind", printer.Badge(tmpl.Classification().String()))
		if tmpl.Path != "" {
			printer.KeyValue("Path", tmpl.Path)
		}
		printer.Println()
	}
	printer.Print("%s", tmpl.Content)
}
