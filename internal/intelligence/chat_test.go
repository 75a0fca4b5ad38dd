package intelligence

import (
	"context"
	"strings"
	"testing"

	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/llm"
	"github.com/alexanderramin/promptsmith/internal/promptcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_Reply(t *testing.T) {
	client := &mockLLMClient{response: "  A clarity score measures readability.  ", usage: llm.Usage{TotalTokens: 40}}
	c := NewChatService(client, promptcfg.DefaultStore())

	history := []*domain.Message{
		domain.NewMessage(domain.RoleUser, domain.TypeText, "optimize my prompt"),
		domain.NewMessage(domain.RoleAssistant, domain.TypeText, "done"),
	}

	reply, usage, err := c.Reply(context.Background(), history, "what is a clarity score?", "en")
	require.NoError(t, err)
	assert.Equal(t, "A clarity score measures readability.", reply)
	assert.Equal(t, 40, usage.TotalTokens)

	assert.Equal(t, llm.TaskChat, client.lastRequest.Task)
	assert.Contains(t, client.lastRequest.UserPrompt, "user: optimize my prompt")
	assert.Contains(t, client.lastRequest.UserPrompt, "assistant: done")
	assert.Contains(t, client.lastRequest.UserPrompt, "what is a clarity score?")
}

func TestChatService_Reply_BackendErrorPropagates(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	c := NewChatService(client, promptcfg.DefaultStore())

	_, _, err := c.Reply(context.Background(), nil, "hello", "en")
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestChatService_Reply_HistoryBounded(t *testing.T) {
	client := &mockLLMClient{response: "ok"}
	c := NewChatService(client, promptcfg.DefaultStore())

	var history []*domain.Message
	for i := 0; i < 25; i++ {
		history = append(history, domain.NewMessage(domain.RoleUser, domain.TypeText, "msg-"+strings.Repeat("x", i)))
	}

	_, _, err := c.Reply(context.Background(), history, "q", "en")
	require.NoError(t, err)

	// Only the last ten messages are rendered.
	lines := strings.Count(client.lastRequest.UserPrompt, "msg-")
	assert.Equal(t, 10, lines)
}

func TestChatService_Reply_TruncatesLongMessages(t *testing.T) {
	client := &mockLLMClient{response: "ok"}
	c := NewChatService(client, promptcfg.DefaultStore())

	long := strings.Repeat("長", 600)
	history := []*domain.Message{domain.NewMessage(domain.RoleUser, domain.TypeText, long)}

	_, _, err := c.Reply(context.Background(), history, "q", "en")
	require.NoError(t, err)
	assert.Less(t, strings.Count(client.lastRequest.UserPrompt, "長"), 600)
}

func TestChatService_Reply_EmptyHistory(t *testing.T) {
	client := &mockLLMClient{response: "hi"}
	c := NewChatService(client, promptcfg.DefaultStore())

	_, _, err := c.Reply(context.Background(), nil, "hello", "en")
	require.NoError(t, err)
	assert.Contains(t, client.lastRequest.UserPrompt, "(empty)")
}
