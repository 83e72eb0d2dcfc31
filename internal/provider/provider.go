package provider

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/templateshub/demos-backend/internal"
)

// ErrOverloaded marks an upstream "too busy" signal so the boundary can
// answer with a softer retry message than a plain failure.
var ErrOverloaded = errors.New("model service overloaded")

// ChatProvider is one request/response exchange with the model. When tool
// definitions are passed, the returned turn may carry tool calls instead
// of (or alongside) text.
type ChatProvider interface {
	Model() string
	Complete(ctx context.Context, turns []internal.Turn, tools []mcp.Tool) (internal.Turn, error)
}

// MockProvider answers without an external API. Useful for offline
// development and handler tests.
type MockProvider struct{}

func (m MockProvider) Model() string { return "mock" }

func (m MockProvider) Complete(ctx context.Context, turns []internal.Turn, tools []mcp.Tool) (internal.Turn, error) {
	last := ""
	for _, t := range turns {
		if t.Role == "user" {
			last = t.Content
		}
	}
	return internal.Turn{
		Role:    "assistant",
		Content: "(mock) You asked: " + last,
	}, nil
}
