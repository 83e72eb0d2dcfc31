package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func echoTool(name string) Tool {
	return Tool{
		Def: mcp.NewTool(name, mcp.WithDescription("echo")),
		Call: func(args map[string]any) (string, error) {
			return `{"tool":"` + name + `"}`, nil
		},
	}
}

func TestExecuteKnownTool(t *testing.T) {
	r := NewRegistry(echoTool("get_open_hours"))
	out := r.Execute("get_open_hours", map[string]any{})
	if out != `{"tool":"get_open_hours"}` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	r := NewRegistry(echoTool("get_open_hours"))
	out := r.Execute("nope", nil)
	if !strings.Contains(out, `"error"`) || !strings.Contains(out, "Unknown tool: nope") {
		t.Fatalf("expected JSON error object, got %s", out)
	}
}

func TestExecuteHandlerFailure(t *testing.T) {
	r := NewRegistry(Tool{
		Def: mcp.NewTool("boom"),
		Call: func(map[string]any) (string, error) {
			return "", errors.New("catalog unavailable")
		},
	})
	out := r.Execute("boom", nil)
	if !strings.Contains(out, "catalog unavailable") {
		t.Fatalf("expected handler error surfaced as JSON, got %s", out)
	}
}

func TestDefinitionsKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry(echoTool("a"), echoTool("b"), echoTool("c"))
	defs := r.Definitions()
	if len(defs) != 3 || defs[0].Name != "a" || defs[1].Name != "b" || defs[2].Name != "c" {
		t.Fatalf("unexpected definition order: %+v", defs)
	}
}

func TestParseArgumentsMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2]", "null"} {
		args := ParseArguments(raw)
		if args == nil || len(args) != 0 {
			t.Fatalf("raw %q: expected empty map, got %v", raw, args)
		}
	}
}

func TestArgHelpers(t *testing.T) {
	args := ParseArguments(`{"date":"2026-03-16","vegan":true,"partySize":6}`)
	if StringArg(args, "date") != "2026-03-16" {
		t.Fatal("StringArg failed")
	}
	if !BoolArg(args, "vegan") {
		t.Fatal("BoolArg failed")
	}
	if IntArg(args, "partySize") != 6 {
		t.Fatal("IntArg failed")
	}
	if StringArg(args, "missing") != "" || BoolArg(args, "missing") || IntArg(args, "missing") != 0 {
		t.Fatal("missing keys should default to zero values")
	}
	if StringArg(args, "vegan") != "" {
		t.Fatal("wrong-typed values should default")
	}
}
