package llm

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client against any OpenAI-compatible chat
// completion endpoint. This covers the OpenAI API itself as well as
// local servers such as Ollama's /v1 endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// OpenAIOption configures OpenAIClient.
type OpenAIOption func(*openaiConfig)

type openaiConfig struct {
	baseURL string
	model   string
}

// WithBaseURL points the client at a non-default endpoint,
// e.g. "http://localhost:11434/v1" for Ollama.
func WithBaseURL(url string) OpenAIOption {
	return func(c *openaiConfig) { c.baseURL = url }
}

// WithModel sets the default model for requests that don't specify one.
func WithModel(model string) OpenAIOption {
	return func(c *openaiConfig) { c.model = model }
}

// NewOpenAIClient creates a client for an OpenAI-compatible backend.
// apiKey may be any non-empty placeholder for local servers that don't
// check credentials.
func NewOpenAIClient(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	cfg := openaiConfig{model: openai.GPT3Dot5Turbo}
	for _, opt := range opts {
		opt(&cfg)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.baseURL != "" {
		clientCfg.BaseURL = cfg.baseURL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.model,
	}
}

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	start := time.Now()

	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: encodeTemperature(req.Temperature),
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewError("complete", ctx.Err(), false)
		}
		retryable := isRetryableMessage(err.Error())
		return nil, NewError("complete", fmt.Errorf("%w: %v", ErrUnavailable, err), retryable)
	}

	if len(resp.Choices) == 0 {
		return nil, NewError("complete", fmt.Errorf("no choices in response"), false)
	}

	choice := resp.Choices[0]
	return &CompletionResponse{
		Content:      choice.Message.Content,
		Model:        resp.Model,
		FinishReason: string(choice.FinishReason),
		Duration:     time.Since(start),
		Usage: TokenUsage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// encodeTemperature maps a requested temperature to the wire value.
// The upstream struct tags temperature omitempty, so a literal 0 would be
// dropped and the server default (1.0) used instead. The smallest non-zero
// float survives serialization and is deterministic in practice.
func encodeTemperature(t float64) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
