package chat

import "errors"

// Sentinel errors for turn execution.
var (
	// ErrEmptyTranscript indicates a turn was attempted on a transcript
	// with no user message. This is a precondition violation, not a
	// recoverable condition.
	ErrEmptyTranscript = errors.New("transcript has no user message")

	// ErrNoReply indicates a turn completed without appending an
	// assistant message. This signals a bug in graph wiring and should
	// never occur with the stock Bot graph.
	ErrNoReply = errors.New("turn produced no assistant reply")
)
