package model

import "github.com/google/uuid"

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn. It is immutable once created.
type Message struct {
	id      string
	role    Role
	content Content
}

// NewMessage creates a message with a fresh ID.
func NewMessage(role Role, content Content) Message {
	return Message{
		id:      uuid.NewString(),
		role:    role,
		content: cloneContent(content),
	}
}

// NewUserMessage creates a plain-text user message.
func NewUserMessage(text string) Message {
	return NewMessage(RoleUser, TextContent(text))
}

// NewAssistantMessage creates a plain-text assistant message.
func NewAssistantMessage(text string) Message {
	return NewMessage(RoleAssistant, TextContent(text))
}

func (m Message) ID() string { return m.id }

func (m Message) Role() Role { return m.role }

// Content returns a copy of the message payload.
func (m Message) Content() Content { return cloneContent(m.content) }

// Text returns the flattened, trimmed text of the message.
func (m Message) Text() string { return ExtractText(m.content) }

func (m Message) IsUser() bool { return m.role == RoleUser }
