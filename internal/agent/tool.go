package agent

// Tool is a callable capability registered with the agent under a stable name
// and a natural-language description. The description is part of the contract:
// it is what the model reads to decide when and how to invoke the tool.
type Tool struct {
	Name        string
	Description string
	Run         func(input string) (string, error)
}

// def converts the tool into its wire-format advertisement. Every tool takes
// a single free-text query string.
func (t Tool) def() ToolDef {
	return ToolDef{
		Type: "function",
		Function: FunctionDef{
			Name:        t.Name,
			Description: t.Description,
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query to pass to the tool",
					},
				},
				"required": []string{"query"},
			},
		},
	}
}
