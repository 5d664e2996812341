package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// searchMP3Tool returns the tool definition for search_mp3. The description
// documents the query grammar and must stay in sync with internal/query.
func searchMP3Tool() mcp.Tool {
	return mcp.Tool{
		Name: "search_mp3",
		Description: "Search for MP3 files in the configured music folder and list them " +
			"as a playlist with BPM and genre information. The query accepts three shapes: " +
			"plain search terms ('Ariana Grande god is a woman'), " +
			"'search: <terms> | playlist: <name>', or '<terms> | playlist: <name>'. " +
			"Matching is loose: a file matches when its name contains any search word, " +
			"and results are ranked by how many words match.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search query, optionally with a playlist name",
				},
			},
			Required: []string{"query"},
		},
	}
}

// handleSearchMP3 handles the search_mp3 tool invocation. The search core is
// total, so the handler only validates the argument shape.
func (s *Server) handleSearchMP3(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	return mcp.NewToolResultText(s.searcher.SearchQuery(query)), nil
}
