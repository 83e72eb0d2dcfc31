package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/templateshub/demos-backend/internal"
)

// OpenAIProvider drives the chat completions API with function tools.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider reads OPENAI_API_KEY from the environment. The model
// defaults to an affordable one when not overridden.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(key)),
		model:  model,
	}, nil
}

func (p *OpenAIProvider) Model() string { return p.model }

func (p *OpenAIProvider) Complete(ctx context.Context, turns []internal.Turn, tools []mcp.Tool) (internal.Turn, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.model),
		Messages:    toOpenAIMessages(turns),
		Temperature: openai.Float(0.4),
		MaxTokens:   openai.Int(1024),
	}
	if len(tools) > 0 {
		params.Tools = toOpenAITools(tools)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) && apierr.StatusCode == http.StatusTooManyRequests {
			return internal.Turn{}, fmt.Errorf("openai: %w", ErrOverloaded)
		}
		return internal.Turn{}, fmt.Errorf("openai: %w", err)
	}
	if len(completion.Choices) == 0 {
		return internal.Turn{}, errors.New("openai: no response from the model")
	}

	msg := completion.Choices[0].Message
	reply := internal.Turn{Role: "assistant", Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		if tc.Type != "function" {
			continue
		}
		reply.ToolCalls = append(reply.ToolCalls, internal.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return reply, nil
}

func toOpenAIMessages(turns []internal.Turn) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(turns))
	for _, t := range turns {
		switch t.Role {
		case "system":
			out = append(out, openai.SystemMessage(t.Content))
		case "assistant":
			if len(t.ToolCalls) == 0 {
				out = append(out, openai.AssistantMessage(t.Content))
				continue
			}
			calls := make([]openai.ChatCompletionMessageToolCallUnionParam, len(t.ToolCalls))
			for i, tc := range t.ToolCalls {
				calls[i] = openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: tc.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      tc.Name,
							Arguments: tc.Arguments,
						},
					},
				}
			}
			asst := openai.ChatCompletionAssistantMessageParam{ToolCalls: calls}
			if t.Content != "" {
				asst.Content.OfString = openai.String(t.Content)
			}
			out = append(out, openai.ChatCompletionMessageParamUnion{OfAssistant: &asst})
		case "tool":
			out = append(out, openai.ToolMessage(t.Content, t.ToolCallID))
		default:
			out = append(out, openai.UserMessage(t.Content))
		}
	}
	return out
}

// toOpenAITools converts mcp.Tool schemas to the chat completions tool
// format. Both sides are JSON Schema, so the properties map carries over
// as-is.
func toOpenAITools(defs []mcp.Tool) []openai.ChatCompletionToolUnionParam {
	out := make([]openai.ChatCompletionToolUnionParam, len(defs))
	for i, def := range defs {
		params := openai.FunctionParameters{
			"type":       def.InputSchema.Type,
			"properties": def.InputSchema.Properties,
		}
		if len(def.InputSchema.Required) > 0 {
			params["required"] = def.InputSchema.Required
		}
		out[i] = openai.ChatCompletionFunctionTool(openai.FunctionDefinitionParam{
			Name:        def.Name,
			Description: openai.String(def.Description),
			Parameters:  params,
		})
	}
	return out
}
