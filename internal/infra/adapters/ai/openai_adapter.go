package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"github.com/pkoukk/tiktoken-go"

	"resumepulse/internal/domain/ports/adapter"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.Analyzer = (*OpenAIAdapter)(nil)

// OpenAIAdapter calls the Chat Completions API in JSON mode. Prompt size is
// pre-checked against a token budget so an oversized resume fails fast
// instead of burning a rate-limited call.
type OpenAIAdapter struct {
	client          openai.Client
	model           string
	maxPromptTokens int
	encoder         *tiktoken.Tiktoken
}

func NewOpenAIAdapter(apiKey, model string, maxPromptTokens int) (*OpenAIAdapter, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if maxPromptTokens <= 0 {
		maxPromptTokens = 12000
	}
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("load token encoding: %w", err)
	}
	return &OpenAIAdapter{
		client:          openai.NewClient(option.WithAPIKey(apiKey)),
		model:           model,
		maxPromptTokens: maxPromptTokens,
		encoder:         enc,
	}, nil
}

func (o *OpenAIAdapter) Name() string { return "openai" }

func (o *OpenAIAdapter) Analyze(ctx context.Context, req adapter.AnalysisRequest) (json.RawMessage, error) {
	userPrompt := buildUserPrompt(req)

	tokens := len(o.encoder.Encode(systemPrompt+userPrompt, nil, nil))
	if tokens > o.maxPromptTokens {
		return nil, fmt.Errorf("prompt too large: %d tokens (limit %d)", tokens, o.maxPromptTokens)
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature: openai.Float(0.3),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, errors.New("no choice content")
	}
	return json.RawMessage(completion.Choices[0].Message.Content), nil
}
