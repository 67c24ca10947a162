package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ignorecat/internal/catalog"
)

// --- Shared types ---

// TemplateSummary is a template without its content.
type TemplateSummary struct {
	Name           string `json:"name"           jsonschema:"template name"`
	Origin         string `json:"origin"         jsonschema:"where the template comes from: root, global, or user"`
	Classification string `json:"classification" jsonschema:"display classification: starred, or the origin"`
	Starred        bool   `json:"starred"        jsonschema:"whether the user starred the template"`
}

func toSummary(tmpl catalog.Template) TemplateSummary {
	return TemplateSummary{
		Name:           tmpl.Name,
		Origin:         tmpl.Origin.String(),
		Classification: tmpl.Classification().String(),
		Starred:        tmpl.Starred,
	}
}

// --- List tool ---

// ListInput is the input for the list_templates tool.
type ListInput struct {
	Kind    string `json:"kind,omitempty"    jsonschema:"only templates of this kind: root, global, user, or starred"`
	Starred bool   `json:"starred,omitempty" jsonschema:"only starred templates"`
}

// ListOutput is the output for the list_templates tool.
type ListOutput struct {
	Count     int               `json:"count"             jsonschema:"number of templates returned"`
	Templates []TemplateSummary `json:"templates"         jsonschema:"templates sorted by name"`
	Warning   string            `json:"warning,omitempty" jsonschema:"non-fatal warning about bundled templates"`
}

func handleList(cat *catalog.Catalog) mcp.ToolHandlerFor[ListInput, ListOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		templates := cat.ListTemplates()

		if input.Kind != "" {
			kind, err := catalog.ParseKind(input.Kind)
			if err != nil {
				return nil, ListOutput{}, err
			}
			templates = catalog.Filter(templates, func(t catalog.Template) bool { return t.Is(kind) })
		}
		if input.Starred {
			templates = catalog.Filter(templates, func(t catalog.Template) bool { return t.Starred })
		}

		out := ListOutput{
			Count:     len(templates),
			Templates: make([]TemplateSummary, 0, len(templates)),
		}
		for _, tmpl := range templates {
			out.Templates = append(out.Templates, toSummary(tmpl))
		}

		if _, report := cat.Bundled(); report.Status != catalog.LoadComplete {
			out.Warning = fmt.Sprintf("bundled templates %s: %v", report.Status, errors.Join(report.Warnings...))
		}

		return nil, out, nil
	}
}

// --- Show tool ---

// ShowInput is the input for the show_template tool.
type ShowInput struct {
	Name string `json:"name" jsonschema:"template name"`
}

// ShowOutput is the output for the show_template tool.
type ShowOutput struct {
	Name           string `json:"name"           jsonschema:"template name"`
	Origin         string `json:"origin"         jsonschema:"where the template comes from: root, global, or user"`
	Classification string `json:"classification" jsonschema:"display classification: starred, or the origin"`
	Path           string `json:"path,omitempty" jsonschema:"bundle path for bundled templates"`
	Content        string `json:"content"        jsonschema:"template body"`
}

func handleShow(cat *catalog.Catalog) mcp.ToolHandlerFor[ShowInput, ShowOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input ShowInput) (*mcp.CallToolResult, ShowOutput, error) {
		tmpl, err := lookup(cat, input.Name)
		if err != nil {
			return nil, ShowOutput{}, err
		}
		return nil, ShowOutput{
			Name:           tmpl.Name,
			Origin:         tmpl.Origin.String(),
			Classification: tmpl.Classification().String(),
			Path:           tmpl.Path,
			Content:        tmpl.Content,
		}, nil
	}
}

// --- Star tool ---

// StarInput is the input for the star_template tool.
type StarInput struct {
	Name   string `json:"name"             jsonschema:"template name"`
	Unstar bool   `json:"unstar,omitempty" jsonschema:"remove the star instead of adding it"`
}

// StarOutput is the output for the star_template tool.
type StarOutput struct {
	Name    string `json:"name"    jsonschema:"template name as stored"`
	Starred bool   `json:"starred" jsonschema:"whether the template is now starred"`
	Changed bool   `json:"changed" jsonschema:"whether the settings file changed"`
}

func handleStar(cat *catalog.Catalog, starrer Starrer) mcp.ToolHandlerFor[StarInput, StarOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input StarInput) (*mcp.CallToolResult, StarOutput, error) {
		var (
			name    string
			changed bool
			err     error
		)
		if input.Unstar {
			// Stale stars need not resolve to a template.
			name = cat.StarredName(input.Name)
			if name == "" {
				return nil, StarOutput{}, errors.New("name is required")
			}
			changed, err = starrer.Unstar(name)
		} else {
			var tmpl catalog.Template
			tmpl, err = lookup(cat, input.Name)
			if err != nil {
				return nil, StarOutput{}, err
			}
			name = tmpl.Name
			changed, err = starrer.Star(name)
		}
		if err != nil {
			return nil, StarOutput{}, fmt.Errorf("updating settings: %w", err)
		}

		return nil, StarOutput{Name: name, Starred: !input.Unstar, Changed: changed}, nil
	}
}

func lookup(cat *catalog.Catalog, name string) (catalog.Template, error) {
	if name == "" {
		return catalog.Template{}, errors.New("name is required")
	}
	tmpl, ok := cat.Lookup(name)
	if !ok {
		return catalog.Template{}, fmt.Errorf("template %q not found", name)
	}
	return tmpl, nil
}
