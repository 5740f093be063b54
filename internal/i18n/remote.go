package i18n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Remote translates a batch of texts. The result is parallel to texts.
type Remote interface {
	Translate(ctx context.Context, texts []string, lang Language, scope string) ([]string, error)
}

var ErrLengthMismatch = errors.New("translation count does not match input")

type HTTPRemote struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPRemote(url, apiKey string) *HTTPRemote {
	return &HTTPRemote{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type translateRequest struct {
	Texts          []string `json:"texts"`
	TargetLanguage string   `json:"targetLanguage"`
	Context        string   `json:"context"`
}

type translateResponse struct {
	Translations []string `json:"translations"`
	Error        string   `json:"error"`
	Fallback     bool     `json:"fallback"`
}

func (r *HTTPRemote) Translate(ctx context.Context, texts []string, lang Language, scope string) ([]string, error) {
	reqBody, err := json.Marshal(translateRequest{
		Texts:          texts,
		TargetLanguage: string(lang),
		Context:        scope,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(body))
	}

	var tr translateResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w body=%q", err, string(body))
	}
	if tr.Error != "" || tr.Fallback {
		return nil, fmt.Errorf("remote translation refused: %s", tr.Error)
	}
	if len(tr.Translations) != len(texts) {
		return nil, fmt.Errorf("%w: got %d want %d", ErrLengthMismatch, len(tr.Translations), len(texts))
	}
	return tr.Translations, nil
}
