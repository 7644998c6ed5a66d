package chat

import (
	"github.com/chatgraph/chatgraph/pkg/chatgraph"
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// HandlerID identifies a responder unit. The set is closed; Route is
// total over it by construction.
type HandlerID string

// The four handler identifiers.
const (
	HandlerJokeTeller   HandlerID = "joke_teller"
	HandlerFactProvider HandlerID = "fact_provider"
	HandlerAdvisor      HandlerID = "advisor"
	HandlerFallback     HandlerID = "fallback"
)

// Route maps an intent to the handler that serves it.
// It is a pure, total function: every input, including IntentGeneral and
// values outside the closed set, maps to exactly one handler, with
// HandlerFallback as the default.
func Route(intent Intent) HandlerID {
	switch intent {
	case IntentJoke:
		return HandlerJokeTeller
	case IntentFact:
		return HandlerFactProvider
	case IntentAdvice:
		return HandlerAdvisor
	default:
		return HandlerFallback
	}
}

// Handler persona instructions. The joke persona is the only one paired
// with creative sampling; see NewHandlerSet.
const (
	jokePersona = "You are a hilarious comedian. Tell a short, funny joke " +
		"related to what the user said. Keep it clean and witty."
	factPersona = "You are a knowledgeable encyclopedia. Provide a concise, " +
		"fascinating fact related to the user's topic. Include a 'Did you know?' opener."
	advicePersona = "You are a wise and empathetic advisor. Give brief, " +
		"actionable advice on the user's topic. Be supportive and practical."
	fallbackPersona = "You are a friendly, helpful assistant. Respond " +
		"conversationally to the user."
)

// Handler is a stateless responder unit. Given the most recent user
// message it produces one assistant reply by issuing a single completion
// request with its persona instruction.
//
// Handlers are independent and order-independent with respect to each
// other; the Bot guarantees exactly one executes per turn.
type Handler struct {
	id          HandlerID
	client      llm.Client
	persona     string
	temperature float64
	model       string
}

// NewHandler creates a handler with an explicit persona and temperature.
// The client is required; there is no global fallback.
func NewHandler(id HandlerID, client llm.Client, persona string, temperature float64, model string) *Handler {
	return &Handler{
		id:          id,
		client:      client,
		persona:     persona,
		temperature: temperature,
		model:       model,
	}
}

// ID returns the handler identifier.
func (h *Handler) ID() HandlerID {
	return h.id
}

// Respond produces one assistant message for the most recent user message
// in the transcript. Collaborator failures are returned as-is; no retry
// happens at this layer.
func (h *Handler) Respond(ctx chatgraph.Context, t Transcript) (Message, error) {
	last, ok := t.LastUser()
	if !ok {
		return Message{}, ErrEmptyTranscript
	}

	ctx.Logger().Info("handler responding", "handler", string(h.id))

	resp, err := h.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: h.persona,
		Messages:     []llm.Message{last},
		Temperature:  h.temperature,
		Model:        h.model,
	})
	if err != nil {
		return Message{}, err
	}

	return AssistantMessage(resp.Content), nil
}

// HandlerSet is the closed set of responders the Bot routes between.
type HandlerSet struct {
	JokeTeller   *Handler
	FactProvider *Handler
	Advisor      *Handler
	Fallback     *Handler
}

// NewHandlerSet builds the four standard handlers sharing one injected
// client. The joke teller samples at llm.TemperatureCreative for variety;
// all others are deterministic.
func NewHandlerSet(client llm.Client, model string) HandlerSet {
	return HandlerSet{
		JokeTeller:   NewHandler(HandlerJokeTeller, client, jokePersona, llm.TemperatureCreative, model),
		FactProvider: NewHandler(HandlerFactProvider, client, factPersona, llm.TemperatureDeterministic, model),
		Advisor:      NewHandler(HandlerAdvisor, client, advicePersona, llm.TemperatureDeterministic, model),
		Fallback:     NewHandler(HandlerFallback, client, fallbackPersona, llm.TemperatureDeterministic, model),
	}
}

// ByID returns the handler for the given ID.
// Unknown IDs return the fallback handler, mirroring Route's totality.
func (hs HandlerSet) ByID(id HandlerID) *Handler {
	switch id {
	case HandlerJokeTeller:
		return hs.JokeTeller
	case HandlerFactProvider:
		return hs.FactProvider
	case HandlerAdvisor:
		return hs.Advisor
	default:
		return hs.Fallback
	}
}

// All returns the handlers in routing-table order.
func (hs HandlerSet) All() []*Handler {
	return []*Handler{hs.JokeTeller, hs.FactProvider, hs.Advisor, hs.Fallback}
}
