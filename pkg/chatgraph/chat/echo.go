package chat

import (
	"github.com/chatgraph/chatgraph/pkg/chatgraph"
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// EchoBot is the single-node variant of the turn executor: no
// classification or routing, just one node that feeds the whole
// transcript to the model and appends the reply.
type EchoBot struct {
	graph      *chatgraph.CompiledGraph[Turn]
	client     llm.Client
	model      string
	transcript Transcript
}

// NewEchoBot builds the one-node graph around the injected client.
func NewEchoBot(client llm.Client, opts ...BotOption) (*EchoBot, error) {
	cfg := botConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &EchoBot{client: client, model: cfg.model}

	compiled, err := chatgraph.NewGraph[Turn]().
		AddNode(nodeEcho, b.respondNode).
		AddEdge(nodeEcho, chatgraph.END).
		SetEntry(nodeEcho).
		Compile()
	if err != nil {
		return nil, err
	}

	b.graph = compiled
	return b, nil
}

// respondNode answers from the full transcript at deterministic sampling.
func (b *EchoBot) respondNode(ctx chatgraph.Context, s Turn) (Turn, error) {
	resp, err := b.client.Complete(ctx, llm.CompletionRequest{
		Messages:    s.Messages,
		Temperature: llm.TemperatureDeterministic,
		Model:       b.model,
	})
	if err != nil {
		return s, err
	}
	s.Messages = s.Messages.Append(AssistantMessage(resp.Content))
	return s, nil
}

// Graph returns the compiled graph, e.g. for Mermaid export.
func (b *EchoBot) Graph() *chatgraph.CompiledGraph[Turn] {
	return b.graph
}

// Transcript returns a copy of the owned transcript.
func (b *EchoBot) Transcript() Transcript {
	out := make(Transcript, len(b.transcript))
	copy(out, b.transcript)
	return out
}

// Send appends text as a user message, runs the graph, and commits the
// exchange. On failure nothing is committed.
func (b *EchoBot) Send(ctx chatgraph.Context, text string) (Message, error) {
	candidate := b.transcript.Append(UserMessage(text))

	result, err := b.graph.Run(ctx, Turn{Messages: candidate})
	if err != nil {
		return Message{}, err
	}
	if len(result.Messages) != len(candidate)+1 {
		return Message{}, ErrNoReply
	}

	reply, _ := result.Messages.Last()
	b.transcript = result.Messages
	return reply, nil
}
