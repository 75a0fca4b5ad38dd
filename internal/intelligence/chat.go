package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
)

// historyDepth bounds how many recent messages feed the chat context.
const historyDepth = 10

// ChatService produces conversational replies for follow-up messages
// that are neither iterate nor modify requests.
type ChatService struct {
	client llm.Client
	store  *promptcfg.Store
}

// NewChatService creates a ChatService backed by the given client and store.
func NewChatService(client llm.Client, store *promptcfg.Store) *ChatService {
	return &ChatService{client: client, store: store}
}

// Reply answers message using recent conversation history as context.
func (c *ChatService) Reply(ctx context.Context, history []*domain.Message, message, language string) (string, llm.Usage, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskChat,
		SystemPrompt: c.store.SystemPrompt("chat", language),
		UserPrompt: c.store.UserPrompt("chat", language, map[string]string{
			"history": renderHistory(history),
			"message": SanitizeUserText(message),
		}),
	})
	if err != nil {
		return "", llm.Usage{}, fmt.Errorf("generating reply: %w", err)
	}
	return strings.TrimSpace(resp.Text), resp.Usage, nil
}

func renderHistory(history []*domain.Message) string {
	if len(history) > historyDepth {
		history = history[len(history)-historyDepth:]
	}

	var b strings.Builder
	for _, m := range history {
		// Only plain text content; typed payloads are too noisy for chat.
		content := m.Content
		if runes := []rune(content); len(runes) > 500 {
			content = string(runes[:500])
		}
		fmt.Fprintf(&b, "%s: %s\n", m.Role, SanitizeUserText(content))
	}
	if b.Len() == 0 {
		return "(empty)"
	}
	return strings.TrimRight(b.String(), "\n")
}
