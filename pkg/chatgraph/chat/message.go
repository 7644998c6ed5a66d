// Package chat implements an intent-routed chatbot on top of the
// chatgraph engine.
//
// A Bot runs one graph per user turn: a classifier node detects the
// intent of the latest user message, a conditional edge routes to
// exactly one of four handler nodes (joke_teller, fact_provider,
// advisor, fallback), and the selected handler appends one assistant
// reply. EchoBot is the trivial single-node variant that skips
// classification and answers directly from the full transcript.
package chat

import (
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// Message is a single conversation entry.
// It aliases llm.Message so the same record flows unchanged from the
// transcript into completion requests; there is exactly one message
// shape in the system.
type Message = llm.Message

// Transcript is the ordered history of exchanged messages.
// It is append-only: operations return a new slice and never modify
// entries in place.
type Transcript []Message

// Append returns a new transcript with msg added at the end.
// The receiver is not modified.
func (t Transcript) Append(msg Message) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, msg)
}

// Last returns the most recent message.
// ok is false if the transcript is empty.
func (t Transcript) Last() (Message, bool) {
	if len(t) == 0 {
		return Message{}, false
	}
	return t[len(t)-1], true
}

// LastUser returns the most recent message with the user role.
// ok is false if no user message exists.
func (t Transcript) LastUser() (Message, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == llm.RoleUser {
			return t[i], true
		}
	}
	return Message{}, false
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: llm.RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: llm.RoleAssistant, Content: content}
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: llm.RoleSystem, Content: content}
}
