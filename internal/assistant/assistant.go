// Package assistant routes raw user text either straight to the MP3 search
// tool or through the reasoning agent, with fallbacks so the front-end always
// receives a usable answer.
package assistant

import (
	"strings"

	"mp3search/internal/agent"
)

// ToolName is the stable name the search routine is registered under.
const ToolName = "MP3Search"

// toolDescription is part of the invocation contract: it documents the three
// input shapes the query grammar accepts and must stay in sync with the
// parser in internal/query.
const toolDescription = `Search for MP3 files in the configured music folder and list them as a playlist in the response. Use this when the user wants to find music files.
Shows BPM and genre information. The tool accepts flexible input formats:
1. Simple search terms: 'Ariana Grande god is a woman'
2. Formatted search: 'search: Ariana Grande | playlist: My Playlist'
3. Just search with playlist: 'Ariana Grande | playlist: My Playlist'

The search uses loose matching - files will match if they contain any of the search words in their filename. Results are sorted by relevance (number of matching words). The playlist name is used for display purposes only unless playlist file writing is enabled.`

// searchKeywords trigger the direct tool path without consulting the agent.
var searchKeywords = []string{"find", "search", "song", "music", "mp3", "playlist"}

// SearchPort is the assistant-facing subset of the catalog searcher.
type SearchPort interface {
	SearchQuery(raw string) string
}

// AgentPort is the assistant-facing subset of the reasoning agent.
type AgentPort interface {
	Run(input string) (agent.Reply, error)
}

// Assistant is the single front door for raw user messages.
type Assistant struct {
	search SearchPort
	agent  AgentPort
}

// New creates an assistant over the searcher and an optional agent. With a
// nil agent every message takes the direct search path.
func New(search SearchPort, ag AgentPort) *Assistant {
	return &Assistant{search: search, agent: ag}
}

// SearchTool returns the search routine as a registered agent tool.
func SearchTool(search SearchPort) agent.Tool {
	return agent.Tool{
		Name:        ToolName,
		Description: toolDescription,
		Run: func(input string) (string, error) {
			return search.SearchQuery(input), nil
		},
	}
}

// Respond handles one user message and always returns a displayable string.
// Messages that look like music searches call the tool directly; everything
// else goes through the agent, falling back to a direct search if the agent
// or its backend fails.
func (a *Assistant) Respond(message string) string {
	if a.agent == nil || looksLikeSearch(message) {
		return a.search.SearchQuery(message) + "\n\n[Tools used: " + ToolName + "]"
	}

	reply, err := a.agent.Run(message)
	if err != nil {
		return a.search.SearchQuery(message) + "\n\n[Tools used: " + ToolName + " (direct search)]"
	}
	if len(reply.ToolsUsed) > 0 {
		return reply.Output + "\n\n[Tools used: " + strings.Join(reply.ToolsUsed, ", ") + "]"
	}
	return reply.Output
}

func looksLikeSearch(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
