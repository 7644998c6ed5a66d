// Package llm defines the text-generation client boundary used by
// chatgraph nodes, plus an OpenAI-compatible implementation and a mock
// for tests.
package llm

import "context"

// Client is the text-generation collaborator interface.
// Implementations must be safe for concurrent use.
//
// A Client accepts an ordered sequence of role-tagged messages plus
// sampling configuration and returns a single assistant completion,
// or an *Error describing the failure.
type Client interface {
	// Complete issues one completion request and blocks until the full
	// response is returned or ctx is cancelled. No timeout is enforced
	// here; callers layer deadlines via ctx.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
