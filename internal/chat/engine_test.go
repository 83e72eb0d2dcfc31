package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal"
	"github.com/templateshub/demos-backend/internal/tools"
)

// scriptProvider replays a fixed sequence of turns, recording every call.
type scriptProvider struct {
	script []internal.Turn
	err    error

	calls     int
	seenTurns [][]internal.Turn
	seenTools [][]mcp.Tool
}

func (s *scriptProvider) Model() string { return "script" }

func (s *scriptProvider) Complete(ctx context.Context, turns []internal.Turn, defs []mcp.Tool) (internal.Turn, error) {
	cp := make([]internal.Turn, len(turns))
	copy(cp, turns)
	s.seenTurns = append(s.seenTurns, cp)
	s.seenTools = append(s.seenTools, defs)

	if s.err != nil {
		return internal.Turn{}, s.err
	}
	if s.calls >= len(s.script) {
		return internal.Turn{Role: "assistant", Content: "out of script"}, nil
	}
	reply := s.script[s.calls]
	s.calls++
	return reply, nil
}

func testRegistry(t *testing.T) (*tools.Registry, *[]map[string]any) {
	t.Helper()
	var received []map[string]any
	reg := tools.NewRegistry(tools.Tool{
		Def: mcp.NewTool("get_open_hours", mcp.WithDescription("hours")),
		Call: func(args map[string]any) (string, error) {
			received = append(received, args)
			return `{"open":"17:00","close":"23:00"}`, nil
		},
	})
	return reg, &received
}

func ask(content string) []internal.Message {
	return []internal.Message{{Role: internal.RoleUser, Content: content}}
}

func TestDirectReply(t *testing.T) {
	reg, _ := testRegistry(t)
	p := &scriptProvider{script: []internal.Turn{
		{Role: "assistant", Content: "We open at 5 PM."},
	}}

	out, err := NewEngine(p, "be helpful", reg).Respond(context.Background(), ask("hours?"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if out != "We open at 5 PM." {
		t.Fatalf("unexpected reply: %q", out)
	}
	if p.calls != 1 {
		t.Fatalf("expected a single round, got %d", p.calls)
	}
	if p.seenTurns[0][0].Role != "system" || p.seenTurns[0][0].Content != "be helpful" {
		t.Fatal("system prompt must seed the message list")
	}
	if len(p.seenTools[0]) != 1 || p.seenTools[0][0].Name != "get_open_hours" {
		t.Fatal("tool definitions must be offered on each round")
	}
}

func TestToolRoundAppendsMatchedResult(t *testing.T) {
	reg, received := testRegistry(t)
	p := &scriptProvider{script: []internal.Turn{
		{Role: "assistant", ToolCalls: []internal.ToolCall{
			{ID: "call_1", Name: "get_open_hours", Arguments: `{"date":"2026-03-16"}`},
		}},
		{Role: "assistant", Content: "Open 5 PM to 11 PM today."},
	}}

	out, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("hours?"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if out != "Open 5 PM to 11 PM today." {
		t.Fatalf("unexpected reply: %q", out)
	}
	if len(*received) != 1 || (*received)[0]["date"] != "2026-03-16" {
		t.Fatalf("tool should receive parsed arguments, got %v", *received)
	}

	// Second round must see the assistant's tool-call turn followed by
	// exactly one tool result tagged with the originating call ID.
	second := p.seenTurns[1]
	last, prev := second[len(second)-1], second[len(second)-2]
	if len(prev.ToolCalls) != 1 || prev.ToolCalls[0].ID != "call_1" {
		t.Fatal("assistant tool-call turn missing from the working list")
	}
	if last.Role != "tool" || last.ToolCallID != "call_1" {
		t.Fatalf("tool result not matched to its call: %+v", last)
	}
}

func TestToolCallsExecuteInEmissionOrder(t *testing.T) {
	var order []string
	reg := tools.NewRegistry(
		tools.Tool{
			Def: mcp.NewTool("first"),
			Call: func(map[string]any) (string, error) {
				order = append(order, "first")
				return "{}", nil
			},
		},
		tools.Tool{
			Def: mcp.NewTool("second"),
			Call: func(map[string]any) (string, error) {
				order = append(order, "second")
				return "{}", nil
			},
		},
	)
	p := &scriptProvider{script: []internal.Turn{
		{Role: "assistant", ToolCalls: []internal.ToolCall{
			{ID: "c2", Name: "second", Arguments: "{}"},
			{ID: "c1", Name: "first", Arguments: "{}"},
		}},
		{Role: "assistant", Content: "done"},
	}}

	if _, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("go")); err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Fatalf("tool calls must run in emission order, got %v", order)
	}
}

func TestMalformedArgumentsDegradeToEmpty(t *testing.T) {
	reg, received := testRegistry(t)
	p := &scriptProvider{script: []internal.Turn{
		{Role: "assistant", ToolCalls: []internal.ToolCall{
			{ID: "c1", Name: "get_open_hours", Arguments: `{broken`},
		}},
		{Role: "assistant", Content: "ok"},
	}}

	if _, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("hours?")); err != nil {
		t.Fatalf("malformed tool arguments must not fail the request: %v", err)
	}
	if len(*received) != 1 || len((*received)[0]) != 0 {
		t.Fatalf("expected empty argument map, got %v", *received)
	}
}

func TestRoundBudgetForcesSummary(t *testing.T) {
	reg, _ := testRegistry(t)
	script := make([]internal.Turn, 0, 7)
	for i := 0; i < 6; i++ {
		script = append(script, internal.Turn{Role: "assistant", ToolCalls: []internal.ToolCall{
			{ID: fmt.Sprintf("c%d", i), Name: "get_open_hours", Arguments: "{}"},
		}})
	}
	script = append(script, internal.Turn{Role: "assistant", Content: "Here is what I found."})
	p := &scriptProvider{script: script}

	out, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("loop"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if out != "Here is what I found." {
		t.Fatalf("summary text must be returned verbatim, got %q", out)
	}
	if p.calls != 7 {
		t.Fatalf("expected 6 tool rounds plus one summary call, got %d", p.calls)
	}
	if got := p.seenTools[6]; len(got) != 0 {
		t.Fatal("the final summary call must not offer tools")
	}
	finalTurns := p.seenTurns[6]
	note := finalTurns[len(finalTurns)-1]
	if note.Role != "user" || note.Content != summariseNote {
		t.Fatalf("summary instruction missing, last turn: %+v", note)
	}
}

func TestEmptySummaryFallsBack(t *testing.T) {
	reg, _ := testRegistry(t)
	script := make([]internal.Turn, 0, 7)
	for i := 0; i < 6; i++ {
		script = append(script, internal.Turn{Role: "assistant", ToolCalls: []internal.ToolCall{
			{ID: fmt.Sprintf("c%d", i), Name: "get_open_hours", Arguments: "{}"},
		}})
	}
	script = append(script, internal.Turn{Role: "assistant", Content: ""})
	p := &scriptProvider{script: script}

	out, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("loop"))
	if err != nil {
		t.Fatalf("Respond failed: %v", err)
	}
	if out != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", out)
	}
}

func TestProviderFailureAborts(t *testing.T) {
	reg, _ := testRegistry(t)
	boom := errors.New("upstream down")
	p := &scriptProvider{err: boom}

	_, err := NewEngine(p, "sys", reg).Respond(context.Background(), ask("hi"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected provider error to propagate, got %v", err)
	}
}
