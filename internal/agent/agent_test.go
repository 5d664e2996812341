package agent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Tools    []ToolDef `json:"tools"`
}

// fakeBackend serves canned assistant messages, one per request, and records
// what it received.
type fakeBackend struct {
	t        *testing.T
	replies  []Message
	requests []chatRequest
}

func (f *fakeBackend) handler(w http.ResponseWriter, r *http.Request) {
	f.t.Helper()
	require.Equal(f.t, "/v1/chat/completions", r.URL.Path)

	var req chatRequest
	require.NoError(f.t, json.NewDecoder(r.Body).Decode(&req))
	f.requests = append(f.requests, req)

	require.NotEmpty(f.t, f.replies, "backend ran out of canned replies")
	reply := f.replies[0]
	f.replies = f.replies[1:]

	resp := map[string]any{
		"choices": []map[string]any{{"message": reply}},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(f.t, json.NewEncoder(w).Encode(resp))
}

func newTestAgent(t *testing.T, backend *fakeBackend, tools []Tool, maxIterations int) (*Agent, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(backend.handler))
	t.Cleanup(srv.Close)
	client := NewClient(ClientConfig{BaseURL: srv.URL + "/v1", Model: "test-model", Timeout: 5 * time.Second})
	return New(client, tools, maxIterations), srv
}

func searchTool(record *[]string) Tool {
	return Tool{
		Name:        "MP3Search",
		Description: "Search for MP3 files",
		Run: func(input string) (string, error) {
			*record = append(*record, input)
			return "Found 1 MP3 files matching '" + input + "'", nil
		},
	}
}

func TestRun_DirectAnswerWithoutTools(t *testing.T) {
	backend := &fakeBackend{t: t, replies: []Message{
		{Role: "assistant", Content: "Hello there."},
	}}
	var calls []string
	ag, _ := newTestAgent(t, backend, []Tool{searchTool(&calls)}, 0)

	reply, err := ag.Run("hi")
	require.NoError(t, err)

	assert.Equal(t, "Hello there.", reply.Output)
	assert.Empty(t, reply.ToolsUsed)
	assert.Empty(t, calls)
	// Tools were still advertised on the request.
	require.Len(t, backend.requests, 1)
	require.Len(t, backend.requests[0].Tools, 1)
	assert.Equal(t, "MP3Search", backend.requests[0].Tools[0].Function.Name)
}

func TestRun_ToolCallLoop(t *testing.T) {
	backend := &fakeBackend{t: t, replies: []Message{
		{Role: "assistant", ToolCalls: []ToolCall{{
			ID:       "call_1",
			Type:     "function",
			Function: FunctionCall{Name: "MP3Search", Arguments: `{"query": "jazz"}`},
		}}},
		{Role: "assistant", Content: "I found one jazz track."},
	}}
	var calls []string
	ag, _ := newTestAgent(t, backend, []Tool{searchTool(&calls)}, 0)

	reply, err := ag.Run("find jazz music")
	require.NoError(t, err)

	assert.Equal(t, "I found one jazz track.", reply.Output)
	assert.Equal(t, []string{"MP3Search"}, reply.ToolsUsed)
	assert.Equal(t, []string{"jazz"}, calls)

	// The tool result went back to the model as a tool message.
	require.Len(t, backend.requests, 2)
	last := backend.requests[1].Messages[len(backend.requests[1].Messages)-1]
	assert.Equal(t, "tool", last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Contains(t, last.Content, "jazz")
}

func TestRun_RepeatedToolListedOnce(t *testing.T) {
	call := func(id, q string) ToolCall {
		return ToolCall{ID: id, Type: "function", Function: FunctionCall{Name: "MP3Search", Arguments: `{"query": "` + q + `"}`}}
	}
	backend := &fakeBackend{t: t, replies: []Message{
		{Role: "assistant", ToolCalls: []ToolCall{call("call_1", "jazz")}},
		{Role: "assistant", ToolCalls: []ToolCall{call("call_2", "piano")}},
		{Role: "assistant", Content: "Done."},
	}}
	var calls []string
	ag, _ := newTestAgent(t, backend, []Tool{searchTool(&calls)}, 0)

	reply, err := ag.Run("find jazz and piano")
	require.NoError(t, err)

	assert.Equal(t, []string{"MP3Search"}, reply.ToolsUsed)
	assert.Equal(t, []string{"jazz", "piano"}, calls)
}

func TestRun_IterationBudgetForcesFinalAnswer(t *testing.T) {
	call := ToolCall{ID: "c", Type: "function", Function: FunctionCall{Name: "MP3Search", Arguments: `{"query": "jazz"}`}}
	backend := &fakeBackend{t: t, replies: []Message{
		{Role: "assistant", ToolCalls: []ToolCall{call}},
		{Role: "assistant", ToolCalls: []ToolCall{call}},
		{Role: "assistant", Content: "Final answer after budget."},
	}}
	var calls []string
	ag, _ := newTestAgent(t, backend, []Tool{searchTool(&calls)}, 2)

	reply, err := ag.Run("find jazz")
	require.NoError(t, err)

	assert.Equal(t, "Final answer after budget.", reply.Output)
	assert.Len(t, calls, 2)
	// The forced final request advertises no tools.
	require.Len(t, backend.requests, 3)
	assert.Empty(t, backend.requests[2].Tools)
}

func TestRun_UnknownToolReportedToModel(t *testing.T) {
	backend := &fakeBackend{t: t, replies: []Message{
		{Role: "assistant", ToolCalls: []ToolCall{{
			ID:       "call_1",
			Type:     "function",
			Function: FunctionCall{Name: "Nonexistent", Arguments: `{}`},
		}}},
		{Role: "assistant", Content: "Sorry."},
	}}
	ag, _ := newTestAgent(t, backend, nil, 0)

	reply, err := ag.Run("do something")
	require.NoError(t, err)

	assert.Equal(t, "Sorry.", reply.Output)
	last := backend.requests[1].Messages[len(backend.requests[1].Messages)-1]
	assert.Contains(t, last.Content, "unknown tool")
}

func TestRun_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(ClientConfig{BaseURL: srv.URL + "/v1", Model: "test-model", Timeout: time.Second})
	ag := New(client, nil, 0)

	_, err := ag.Run("hi")

	assert.Error(t, err)
}

func TestChat_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		resp := map[string]any{"choices": []map[string]any{{"message": Message{Role: "assistant", Content: "ok"}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	client := NewClient(ClientConfig{BaseURL: srv.URL, Model: "test-model", Timeout: time.Second})

	msg, err := client.Chat([]Message{{Role: "user", Content: "hi"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "ok", msg.Content)
	assert.Equal(t, 2, attempts)
}

func TestParseQueryArgument(t *testing.T) {
	assert.Equal(t, "jazz piano", parseQueryArgument(`{"query": "jazz piano"}`))
	// Sloppy model output falls back to the raw argument string.
	assert.Equal(t, "just some text", parseQueryArgument("just some text"))
	assert.Equal(t, `{"other": "field"}`, parseQueryArgument(`{"other": "field"}`))
}
