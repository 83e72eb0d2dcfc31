// Package chat drives the bounded tool-call exchange between a site
// assistant and the model provider.
package chat

import (
	"context"

	"github.com/templateshub/demos-backend/internal"
	"github.com/templateshub/demos-backend/internal/provider"
	"github.com/templateshub/demos-backend/internal/tools"
)

// maxToolRounds bounds the number of tool-enabled model exchanges within
// a single chat turn.
const maxToolRounds = 6

const summariseNote = "(System note: tool-call budget reached — please summarise with the information you have.)"

const fallbackReply = "Sorry, I couldn't complete that request."

// Engine answers one chat request for a single site: it seeds the system
// prompt, loops against the provider, and dispatches requested tool calls
// through the site's registry.
type Engine struct {
	provider provider.ChatProvider
	system   string
	registry *tools.Registry
}

func NewEngine(p provider.ChatProvider, systemPrompt string, reg *tools.Registry) *Engine {
	return &Engine{provider: p, system: systemPrompt, registry: reg}
}

// Respond runs the round loop until the model replies without tool calls,
// or the round budget is exhausted and one final tool-free summary call is
// made. Any provider failure aborts the whole request.
func (e *Engine) Respond(ctx context.Context, history []internal.Message) (string, error) {
	turns := make([]internal.Turn, 0, len(history)+1)
	turns = append(turns, internal.Turn{Role: "system", Content: e.system})
	for _, m := range history {
		turns = append(turns, internal.Turn{Role: string(m.Role), Content: m.Content})
	}

	defs := e.registry.Definitions()

	for round := 0; round < maxToolRounds; round++ {
		reply, err := e.provider.Complete(ctx, turns, defs)
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			return reply.Content, nil
		}

		// Keep the model's tool-call directives in the working list,
		// then answer every call in emission order before the next round.
		turns = append(turns, reply)
		for _, tc := range reply.ToolCalls {
			args := tools.ParseArguments(tc.Arguments)
			result := e.registry.Execute(tc.Name, args)
			turns = append(turns, internal.Turn{
				Role:       "tool",
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}

	// Round budget exhausted: one last call without tools on offer.
	turns = append(turns, internal.Turn{Role: "user", Content: summariseNote})
	final, err := e.provider.Complete(ctx, turns, nil)
	if err != nil {
		return "", err
	}
	if final.Content == "" {
		return fallbackReply, nil
	}
	return final.Content, nil
}
