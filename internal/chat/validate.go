package chat

import (
	"fmt"
	"strings"

	"github.com/templateshub/demos-backend/internal"
)

const (
	maxMessages   = 50
	maxContentLen = 2000
)

// ValidateMessages enforces the structural and size bounds on the
// caller-supplied history before anything is forwarded to the paid model.
// The first violated rule determines the error.
func ValidateMessages(messages []internal.Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("`messages` must not be empty.")
	}
	if len(messages) > maxMessages {
		return fmt.Errorf("Too many messages (max %d).", maxMessages)
	}
	for i, m := range messages {
		if m.Role != internal.RoleUser && m.Role != internal.RoleAssistant {
			return fmt.Errorf(`messages[%d].role must be "user" or "assistant".`, i)
		}
		if strings.TrimSpace(m.Content) == "" {
			return fmt.Errorf("messages[%d].content must be a non-empty string.", i)
		}
		if len(m.Content) > maxContentLen {
			return fmt.Errorf("messages[%d].content exceeds %d chars.", i, maxContentLen)
		}
	}
	return nil
}
