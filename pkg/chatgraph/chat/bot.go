package chat

import (
	"github.com/chatgraph/chatgraph/pkg/chatgraph"
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// Turn is the state threaded through one graph run.
// It exists only for the duration of a single user turn: the Bot creates
// it fresh per invocation and discards it after the reply is extracted.
// It serializes cleanly for engine-level checkpointing.
type Turn struct {
	Messages Transcript `json:"messages"`
	Intent   Intent     `json:"intent,omitempty"`
}

// Node identifiers in the Bot graph.
const (
	nodeClassify = "classify"
	nodeEcho     = "chatbot"
)

// Bot is the turn executor for the intent-routed chatbot.
//
// Per turn it runs: classify -> (conditional route) -> one handler -> END.
// The routing guarantees at most one handler invocation per turn, and
// exactly one once an intent is resolved, since Route is total.
//
// The Bot owns its transcript for the lifetime of the process and appends
// to it monotonically. Turns are strictly sequential; Bot is not safe for
// concurrent Send calls.
type Bot struct {
	graph      *chatgraph.CompiledGraph[Turn]
	classifier *Classifier
	handlers   HandlerSet
	transcript Transcript
}

// BotOption configures a Bot.
type BotOption func(*botConfig)

type botConfig struct {
	model           string
	classifierModel string
}

// WithModel sets the model used by all handlers.
func WithModel(model string) BotOption {
	return func(c *botConfig) { c.model = model }
}

// WithClassifierModel sets a separate model for intent classification.
// Defaults to the handler model.
func WithClassifierModel(model string) BotOption {
	return func(c *botConfig) { c.classifierModel = model }
}

// NewBot builds the five-node turn graph around the injected client.
// The client is the only external dependency; there are no shared
// global model handles.
func NewBot(client llm.Client, opts ...BotOption) (*Bot, error) {
	cfg := botConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.classifierModel == "" {
		cfg.classifierModel = cfg.model
	}

	b := &Bot{
		classifier: NewClassifier(client, cfg.classifierModel),
		handlers:   NewHandlerSet(client, cfg.model),
	}

	graph := chatgraph.NewGraph[Turn]().
		AddNode(nodeClassify, b.classifyNode).
		AddConditionalEdge(nodeClassify, b.routeNode).
		SetEntry(nodeClassify)

	for _, h := range b.handlers.All() {
		handler := h
		graph.AddNode(string(handler.ID()), func(ctx chatgraph.Context, s Turn) (Turn, error) {
			reply, err := handler.Respond(ctx, s.Messages)
			if err != nil {
				return s, err
			}
			s.Messages = s.Messages.Append(reply)
			return s, nil
		})
		graph.AddEdge(string(handler.ID()), chatgraph.END)
	}

	compiled, err := graph.Compile()
	if err != nil {
		return nil, err
	}

	b.graph = compiled
	return b, nil
}

// classifyNode detects the intent of the latest user message.
func (b *Bot) classifyNode(ctx chatgraph.Context, s Turn) (Turn, error) {
	intent, err := b.classifier.Classify(ctx, s.Messages)
	if err != nil {
		return s, err
	}
	s.Intent = intent
	return s, nil
}

// routeNode selects the handler node for the classified intent.
// This is the single conditional branch point in the graph.
func (b *Bot) routeNode(ctx chatgraph.Context, s Turn) string {
	return string(Route(s.Intent))
}

// Graph returns the compiled turn graph, e.g. for Mermaid export.
func (b *Bot) Graph() *chatgraph.CompiledGraph[Turn] {
	return b.graph
}

// Transcript returns a copy of the owned transcript.
func (b *Bot) Transcript() Transcript {
	out := make(Transcript, len(b.transcript))
	copy(out, b.transcript)
	return out
}

// Respond executes one turn over the given transcript and returns the
// assistant reply. The transcript must contain at least one user message;
// otherwise ErrEmptyTranscript is returned before any model call.
//
// Collaborator failures propagate unchanged (wrapped in the engine's
// NodeError); no retry happens here, and no partial reply is produced.
// Callers that want retry must re-run the whole turn.
func (b *Bot) Respond(ctx chatgraph.Context, t Transcript, opts ...chatgraph.RunOption) (Message, error) {
	if _, ok := t.LastUser(); !ok {
		return Message{}, ErrEmptyTranscript
	}

	result, err := b.graph.Run(ctx, Turn{Messages: t}, opts...)
	if err != nil {
		return Message{}, err
	}

	if len(result.Messages) != len(t)+1 {
		return Message{}, ErrNoReply
	}
	reply, _ := result.Messages.Last()
	if reply.Role != llm.RoleAssistant {
		return Message{}, ErrNoReply
	}
	return reply, nil
}

// Send appends text as a user message, executes one turn, and commits
// both the user message and the reply to the owned transcript.
//
// On failure nothing is committed: the turn's partial transcript is
// discarded and the caller may simply send again.
func (b *Bot) Send(ctx chatgraph.Context, text string) (Message, error) {
	candidate := b.transcript.Append(UserMessage(text))

	reply, err := b.Respond(ctx, candidate)
	if err != nil {
		return Message{}, err
	}

	b.transcript = candidate.Append(reply)
	return reply, nil
}
