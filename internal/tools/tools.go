// Package tools maps model-facing tool names to their implementations.
//
// Definitions use the mcp.Tool schema format; providers convert them to
// their own wire format. Handlers take a parsed argument map and return a
// JSON string ready to be threaded back into the conversation.
package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool pairs a schema definition with its implementation.
type Tool struct {
	Def  mcp.Tool
	Call func(args map[string]any) (string, error)
}

// Registry is a static name→tool table built once at startup.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(ts))}
	for _, t := range ts {
		if _, exists := r.tools[t.Def.Name]; exists {
			continue
		}
		r.tools[t.Def.Name] = t
		r.order = append(r.order, t.Def.Name)
	}
	return r
}

// Definitions returns the tool schemas in registration order.
func (r *Registry) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Def)
	}
	return defs
}

// Execute runs the named tool. Unknown names and handler failures come
// back as JSON error objects rather than aborting the conversation.
func (r *Registry) Execute(name string, args map[string]any) string {
	t, ok := r.tools[name]
	if !ok {
		return errorJSON("Unknown tool: " + name)
	}
	out, err := t.Call(args)
	if err != nil {
		return errorJSON(err.Error())
	}
	return out
}

func errorJSON(msg string) string {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}

// ParseArguments parses the raw JSON argument text emitted by the model.
// Malformed input degrades to an empty map so each tool can apply its own
// defaults instead of the request failing.
func ParseArguments(raw string) map[string]any {
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}

// StringArg returns the string value for key, or "" when absent or of the
// wrong type.
func StringArg(args map[string]any, key string) string {
	if v, ok := args[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// BoolArg returns the boolean value for key, defaulting to false.
func BoolArg(args map[string]any, key string) bool {
	if v, ok := args[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// IntArg returns the numeric value for key truncated to int. JSON numbers
// decode as float64; anything else yields 0.
func IntArg(args map[string]any, key string) int {
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		}
	}
	return 0
}
