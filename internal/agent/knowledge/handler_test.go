package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-agent/internal/model"
	pkgLog "jarvis-agent/pkg/log"
	"jarvis-agent/pkg/wikipedia"
)

type mockLookup struct {
	result  string
	err     error
	queries []string
}

func (m *mockLookup) Run(ctx context.Context, query string) (string, error) {
	m.queries = append(m.queries, query)
	return m.result, m.err
}

func TestHandle_EmptyConversation(t *testing.T) {
	lookup := &mockLookup{}
	h := New(pkgLog.NewNop(), lookup)

	msgs, err := h.Handle(context.Background(), model.NewConversation(), nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, EmptyQueryMessage, msgs[0].Text())
	assert.Empty(t, lookup.queries)
}

func TestHandle_LastMessageNotUser(t *testing.T) {
	lookup := &mockLookup{}
	h := New(pkgLog.NewNop(), lookup)

	conv := model.NewConversation(model.NewAssistantMessage("tell me about history"))
	msgs, err := h.Handle(context.Background(), conv, nil)
	require.NoError(t, err)
	assert.Empty(t, msgs)
	assert.Empty(t, lookup.queries)
}

func TestHandle_Success(t *testing.T) {
	lookup := &mockLookup{
		result: "Page: Penicillin\nSummary: Penicillins are a group of antibiotics.\nMore text\n\nPage: Alexander Fleming\nSummary: Scottish physician.",
	}
	h := New(pkgLog.NewNop(), lookup)

	conv := model.NewConversation(model.NewUserMessage("tell me about the history of penicillin"))
	msgs, err := h.Handle(context.Background(), conv, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)

	want := "Here's what I found about 'tell me about the history of penicillin':\n\n" +
		"Penicillins are a group of antibiotics." +
		"\n\nIf you have any health-related questions about this topic, I'm here to help!"
	assert.Equal(t, want, msgs[0].Text())
	assert.Equal(t, model.RoleAssistant, msgs[0].Role())
	assert.Equal(t, []string{"tell me about the history of penicillin"}, lookup.queries)
}

func TestHandle_LookupFailureApologizes(t *testing.T) {
	h := New(pkgLog.NewNop(), &mockLookup{err: wikipedia.ErrNoGoodResult})

	conv := model.NewConversation(model.NewUserMessage("wiki xyzzy"))
	msgs, err := h.Handle(context.Background(), conv, nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t,
		"I apologize, but I couldn't retrieve information about 'wiki xyzzy' at the moment. Please try rephrasing your question or ask me about health and nutrition topics directly.",
		msgs[0].Text())
}

func TestHandle_NoLookupApologizes(t *testing.T) {
	msgs, err := New(nil, nil).Handle(context.Background(), model.NewConversation(model.NewUserMessage("wiki")), nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.True(t, strings.HasPrefix(msgs[0].Text(), "I apologize"))
}

func TestHandle_LongResultTruncated(t *testing.T) {
	long := strings.Repeat("é", 1500)
	h := New(pkgLog.NewNop(), &mockLookup{result: long})

	msgs, err := h.Handle(context.Background(), model.NewConversation(model.NewUserMessage("explain")), nil)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0].Text(), strings.Repeat("é", 1000)+"...\n\n")
	assert.NotContains(t, msgs[0].Text(), strings.Repeat("é", 1001))
}

func TestCleanResult(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"summary line", "Page: A\nSummary:  first line \nsecond", "first line"},
		{"summary at end", "Page: A\nSummary: only", "only"},
		{"no marker", "  plain text \n", "plain text"},
		{"leading summary not matched", "Summary: x\nmore", "Summary: x\nmore"},
		{"first marker wins", "\nSummary: one\n\nPage: B\nSummary: two", "one"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanResult(tt.raw))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "", Truncate("", 0))
}
