package chat

import (
	"github.com/chatgraph/chatgraph/pkg/chatgraph"
	"github.com/chatgraph/chatgraph/pkg/chatgraph/llm"
)

// classifierInstruction pins the model to a single category word.
const classifierInstruction = "You are an intent classifier. Classify the " +
	"user's message into EXACTLY one of these categories: joke, fact, advice, " +
	"general. Reply with ONLY the single category word, nothing else."

// Classifier maps the most recent user message to an Intent via a single
// deterministic completion request. Output that is not a recognized label
// is silently coerced to IntentGeneral; only collaborator failures are
// surfaced as errors.
type Classifier struct {
	client llm.Client
	model  string
}

// NewClassifier creates a classifier using the injected client.
// model may be empty to use the client's default.
func NewClassifier(client llm.Client, model string) *Classifier {
	return &Classifier{client: client, model: model}
}

// Classify returns the intent of the most recent user message.
// Returns ErrEmptyTranscript if the transcript has no user message.
func (c *Classifier) Classify(ctx chatgraph.Context, t Transcript) (Intent, error) {
	last, ok := t.LastUser()
	if !ok {
		return "", ErrEmptyTranscript
	}

	resp, err := c.client.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: classifierInstruction,
		Messages:     []llm.Message{last},
		Temperature:  llm.TemperatureDeterministic,
		Model:        c.model,
	})
	if err != nil {
		return "", err
	}

	intent := ParseIntent(resp.Content)
	ctx.Logger().Info("intent classified", "intent", string(intent))
	return intent, nil
}
