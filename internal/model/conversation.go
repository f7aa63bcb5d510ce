package model

import "slices"

// Conversation is an append-only, ordered list of messages. The most recent
// message drives routing.
//
// Conversation is a value: Append returns a new Conversation and never changes
// what the receiver sees, so one invocation can extend its copy without
// affecting the caller's.
type Conversation struct {
	messages []Message
}

// NewConversation builds a conversation from msgs in order.
func NewConversation(msgs ...Message) Conversation {
	return Conversation{messages: slices.Clone(msgs)}
}

// Append returns a conversation with msgs added at the end.
func (c Conversation) Append(msgs ...Message) Conversation {
	if len(msgs) == 0 {
		return c
	}
	return Conversation{messages: append(slices.Clip(c.messages), msgs...)}
}

func (c Conversation) Len() int { return len(c.messages) }

func (c Conversation) IsEmpty() bool { return len(c.messages) == 0 }

// Last returns the most recent message.
func (c Conversation) Last() (Message, bool) {
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// Messages returns a copy of the messages in order.
func (c Conversation) Messages() []Message {
	return slices.Clone(c.messages)
}
