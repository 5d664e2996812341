// Package agent implements a tool-calling reasoning loop over an
// OpenAI-compatible chat backend.
package agent

import (
	"encoding/json"
	"fmt"
)

const systemPrompt = "You are a helpful assistant for a local music library. " +
	"Use the available tools to look up MP3 files when the user asks about " +
	"music, and answer other questions directly."

// DefaultMaxIterations bounds how many tool-call rounds a single request may
// take before the agent forces a final answer.
const DefaultMaxIterations = 5

// Agent routes a user message through the chat backend, executing the tool
// calls the model requests until it produces a final answer.
type Agent struct {
	client        *Client
	tools         []Tool
	maxIterations int
}

// Reply is the agent's final answer plus the names of the tools it invoked,
// in first-use order.
type Reply struct {
	Output    string
	ToolsUsed []string
}

// New creates an agent over the given backend and tool registry.
func New(client *Client, tools []Tool, maxIterations int) *Agent {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Agent{client: client, tools: tools, maxIterations: maxIterations}
}

// Run executes the reasoning loop for one user message. When the iteration
// budget runs out the model is asked once more, without tools, to produce a
// final answer from what it has gathered so far.
func (a *Agent) Run(input string) (Reply, error) {
	defs := make([]ToolDef, len(a.tools))
	for i, t := range a.tools {
		defs[i] = t.def()
	}

	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: input},
	}
	var used []string

	for i := 0; i < a.maxIterations; i++ {
		msg, err := a.client.Chat(messages, defs)
		if err != nil {
			return Reply{}, err
		}
		messages = append(messages, msg)
		if len(msg.ToolCalls) == 0 {
			return Reply{Output: msg.Content, ToolsUsed: used}, nil
		}
		for _, call := range msg.ToolCalls {
			result := a.invoke(call)
			used = appendUnique(used, call.Function.Name)
			messages = append(messages, Message{
				Role:       "tool",
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	// Iteration budget exhausted: force a final answer.
	messages = append(messages, Message{
		Role:    "user",
		Content: "Provide your final answer based on the information gathered so far.",
	})
	msg, err := a.client.Chat(messages, nil)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Output: msg.Content, ToolsUsed: used}, nil
}

// invoke runs one requested tool call. Unknown tools and tool errors are
// reported back to the model as tool output so the loop can recover.
func (a *Agent) invoke(call ToolCall) string {
	for _, t := range a.tools {
		if t.Name != call.Function.Name {
			continue
		}
		out, err := t.Run(parseQueryArgument(call.Function.Arguments))
		if err != nil {
			return fmt.Sprintf("tool %s failed: %v", t.Name, err)
		}
		return out
	}
	return fmt.Sprintf("unknown tool: %s", call.Function.Name)
}

// parseQueryArgument extracts the query string from the JSON arguments the
// model produced. Malformed arguments fall back to the raw string, keeping
// the loop total over sloppy model output.
func parseQueryArgument(arguments string) string {
	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err == nil && args.Query != "" {
		return args.Query
	}
	return arguments
}

func appendUnique(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}
