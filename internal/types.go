package internal

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of the caller-supplied conversation history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ToolCall is a tool invocation requested by the model. Arguments is the
// raw JSON text exactly as the model emitted it.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// Turn is one model-facing conversation entry. Unlike Message it can carry
// tool-call directives (assistant turns) or a tool result tagged with the
// originating call's ID (tool turns).
type Turn struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
}
