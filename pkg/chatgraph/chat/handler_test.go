package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatgraph/chatgraph/pkg/chatgraph"
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// testCtx creates a test execution context.
func testCtx() chatgraph.Context {
	return chatgraph.NewContext(context.Background())
}

// TestRoute tests the intent-to-handler mapping.
func TestRoute(t *testing.T) {
	testCases := []struct {
		intent Intent
		want   HandlerID
	}{
		{IntentJoke, HandlerJokeTeller},
		{IntentFact, HandlerFactProvider},
		{IntentAdvice, HandlerAdvisor},
		{IntentGeneral, HandlerFallback},
	}

	for _, tc := range testCases {
		t.Run(string(tc.intent), func(t *testing.T) {
			assert.Equal(t, tc.want, Route(tc.intent))
		})
	}
}

// TestRoute_Total tests that arbitrary values map to the fallback.
func TestRoute_Total(t *testing.T) {
	for _, raw := range []string{"", "sports", "JOKE", "unknown", "  "} {
		assert.Equal(t, HandlerFallback, Route(Intent(raw)), "intent %q", raw)
	}
}

// TestHandler_Respond tests a single completion with the persona prompt.
func TestHandler_Respond(t *testing.T) {
	mock := llm.NewMockClient("why did the gopher cross the road")
	h := NewHandler(HandlerJokeTeller, mock, jokePersona, llm.TemperatureCreative, "")

	reply, err := h.Respond(testCtx(), Transcript{UserMessage("tell me a joke")})

	require.NoError(t, err)
	assert.Equal(t, llm.RoleAssistant, reply.Role)
	assert.Equal(t, "why did the gopher cross the road", reply.Content)

	require.Equal(t, 1, mock.CallCount())
	call := mock.LastCall()
	assert.Equal(t, jokePersona, call.SystemPrompt)
	assert.Equal(t, llm.TemperatureCreative, call.Temperature)
	require.Len(t, call.Messages, 1)
	assert.Equal(t, "tell me a joke", call.Messages[0].Content)
}

// TestHandler_Respond_UsesLatestUserMessage tests that only the most recent
// user message is sent, not the whole transcript.
func TestHandler_Respond_UsesLatestUserMessage(t *testing.T) {
	mock := llm.NewMockClient("ok")
	h := NewHandler(HandlerFallback, mock, fallbackPersona, llm.TemperatureDeterministic, "")

	tr := Transcript{
		UserMessage("old question"),
		AssistantMessage("old answer"),
		UserMessage("new question"),
	}
	_, err := h.Respond(testCtx(), tr)

	require.NoError(t, err)
	call := mock.LastCall()
	require.Len(t, call.Messages, 1)
	assert.Equal(t, "new question", call.Messages[0].Content)
}

// TestHandler_Respond_EmptyTranscript tests the precondition.
func TestHandler_Respond_EmptyTranscript(t *testing.T) {
	mock := llm.NewMockClient("unused")
	h := NewHandler(HandlerFallback, mock, fallbackPersona, llm.TemperatureDeterministic, "")

	_, err := h.Respond(testCtx(), Transcript{})

	assert.ErrorIs(t, err, ErrEmptyTranscript)
	assert.Equal(t, 0, mock.CallCount()) // No model call made
}

// TestHandler_Respond_PropagatesError tests that client failures surface
// unchanged.
func TestHandler_Respond_PropagatesError(t *testing.T) {
	boom := errors.New("backend down")
	mock := llm.NewMockClient("").WithError(boom)
	h := NewHandler(HandlerAdvisor, mock, advicePersona, llm.TemperatureDeterministic, "")

	_, err := h.Respond(testCtx(), Transcript{UserMessage("help")})

	assert.ErrorIs(t, err, boom)
}

// TestNewHandlerSet_Temperatures tests the creative/deterministic split.
func TestNewHandlerSet_Temperatures(t *testing.T) {
	hs := NewHandlerSet(llm.NewMockClient("ok"), "")

	assert.Equal(t, llm.TemperatureCreative, hs.JokeTeller.temperature)
	assert.Equal(t, llm.TemperatureDeterministic, hs.FactProvider.temperature)
	assert.Equal(t, llm.TemperatureDeterministic, hs.Advisor.temperature)
	assert.Equal(t, llm.TemperatureDeterministic, hs.Fallback.temperature)
}

// TestHandlerSet_ByID tests lookup including the fallback default.
func TestHandlerSet_ByID(t *testing.T) {
	hs := NewHandlerSet(llm.NewMockClient("ok"), "")

	assert.Same(t, hs.JokeTeller, hs.ByID(HandlerJokeTeller))
	assert.Same(t, hs.FactProvider, hs.ByID(HandlerFactProvider))
	assert.Same(t, hs.Advisor, hs.ByID(HandlerAdvisor))
	assert.Same(t, hs.Fallback, hs.ByID(HandlerFallback))
	assert.Same(t, hs.Fallback, hs.ByID(HandlerID("unknown")))
}

// TestHandlerSet_All tests routing-table order.
func TestHandlerSet_All(t *testing.T) {
	hs := NewHandlerSet(llm.NewMockClient("ok"), "")

	all := hs.All()
	require.Len(t, all, 4)
	assert.Equal(t, HandlerJokeTeller, all[0].ID())
	assert.Equal(t, HandlerFactProvider, all[1].ID())
	assert.Equal(t, HandlerAdvisor, all[2].ID())
	assert.Equal(t, HandlerFallback, all[3].ID())
}
