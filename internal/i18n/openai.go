package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const translatePrompt = `You translate short household phrases (%s) from English to %s.
Reply with a JSON array of strings only, one translation per input, same order.
Keep names of dishes and brands recognizable. Use the native script.`

// OpenAIRemote asks a chat completion model for translations.
type OpenAIRemote struct {
	client *openai.Client
	model  string
}

func NewOpenAIRemote(apiKey, baseURL, model string) *OpenAIRemote {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIRemote{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (r *OpenAIRemote) Translate(ctx context.Context, texts []string, lang Language, scope string) ([]string, error) {
	payload, err := json.Marshal(texts)
	if err != nil {
		return nil, err
	}

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(translatePrompt, scope, lang)},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var out []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &out); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w content=%q", err, content)
	}
	if len(out) != len(texts) {
		return nil, fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, len(out), len(texts))
	}
	return out, nil
}
