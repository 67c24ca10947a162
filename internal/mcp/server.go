// Package mcp provides a Model Context Protocol server for ignorecat.
// It exposes catalog queries as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/ignorecat/internal/catalog"
)

// Starrer records starred template names.
type Starrer interface {
	Star(name string) (bool, error)
	Unstar(name string) (bool, error)
}

// NewServer creates an MCP server with all ignorecat tools registered.
// A nil starrer leaves out the write tools.
func NewServer(version string, cat *catalog.Catalog, starrer Starrer) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "ignorecat",
		Version: version,
	}, nil)
	registerTools(server, cat, starrer)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for settings writes.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all ignorecat tools to the server.
func registerTools(server *mcp.Server, cat *catalog.Catalog, starrer Starrer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_templates",
		Description: "List the available ignore templates sorted by name. Filter by kind (root, global, user, starred) or starred=true.",
		Annotations: readOnlyAnnotations(),
	}, handleList(cat))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_template",
		Description: "Return the content of one ignore template by name. Names match exactly first, then case-insensitively.",
		Annotations: readOnlyAnnotations(),
	}, handleShow(cat))

	if starrer == nil {
		return
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "star_template",
		Description: "Star or unstar a template by name. Starred templates are listed with the starred classification.",
		Annotations: writeAnnotations(),
	}, handleStar(cat, starrer))
}
