package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/catalog"
	"github.com/gorewood/ignorecat/internal/output"
)

// listItem is the JSON shape of one listed template.
type listItem struct {
	Name           string       `json:"name"`
	Origin         catalog.Kind `json:"origin"`
	Classification catalog.Kind `json:"classification"`
	Starred        bool         `json:"starred"`
	Path           string       `json:"path,omitempty"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var (
		starredFlag bool
		kindFlag    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long: `List bundled and user templates sorted by name.

Each template is shown with its classification: starred when you starred
it, otherwise where it comes from (root, global, or user).

Examples:
  ignorecat list                 # Everything
  ignorecat list --starred       # Only starred templates
  ignorecat list --kind global   # Editor and OS templates
  ignorecat list --json          # Machine-readable`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, starredFlag, kindFlag)
		},
	}

	cmd.Flags().BoolVar(&starredFlag, "starred", false, "Only starred templates")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Only templates of this kind: root, global, user, or starred")

	return cmd
}

func runList(cmd *cobra.Command, starredOnly bool, kindFlag string) error {
	printer := newPrinter(cmd)

	var kind *catalog.Kind
	if kindFlag != "" {
		parsed, err := catalog.ParseKind(kindFlag)
		if err != nil {
			userErr := output.NewUserError(err.Error())
			printer.Error(userErr)
			return userErr
		}
		kind = &parsed
	}

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	templates := a.catalog.ListTemplates()
	if kind != nil {
		templates = catalog.Filter(templates, func(t catalog.Template) bool { return t.Is(*kind) })
	}
	if starredOnly {
		templates = catalog.Filter(templates, func(t catalog.Template) bool { return t.Starred })
	}

	if _, report := a.catalog.Bundled(); report.Status != catalog.LoadComplete {
		printer.Warn("bundled templates %s: %v", report.Status, errors.Join(report.Warnings...))
	}

	if printer.IsJSON() {
		return outputListJSON(printer, templates)
	}
	outputListHuman(printer, templates)
	return nil
}

func outputListJSON(printer *output.Printer, templates []catalog.Template) error {
	items := make([]listItem, 0, len(templates))
	for _, tmpl := range templates {
		items = append(items, listItem{
			Name:           tmpl.Name,
			Origin:         tmpl.Origin,
			Classification: tmpl.Classification(),
			Starred:        tmpl.Starred,
			Path:           tmpl.Path,
		})
	}
	return printer.WriteJSON(map[string]any{
		"count":     len(items),
		"templates": items,
	})
}

func outputListHuman(printer *output.Printer, templates []catalog.Template) {
	if len(templates) == 0 {
		printer.Println("No templates found")
		return
	}

	rows := make([][]string, 0, len(templates))
	for _, tmpl := range templates {
		rows = append(rows, []string{tmpl.Name, tmpl.Classification().String()})
	}
	printer.Table([]string{"NAME", "KIND"}, rows)
}
