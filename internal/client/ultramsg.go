package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// GatewayClient talks to an UltraMsg-style WhatsApp HTTP gateway.
type GatewayClient struct {
	url    string
	token  string
	client *http.Client
}

func NewGatewayClient(url, token string) *GatewayClient {
	return &GatewayClient{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sendRequest struct {
	Token       string `json:"token"`
	To          string `json:"to"`
	Body        string `json:"body"`
	Priority    int    `json:"priority"`
	ReferenceID string `json:"referenceId,omitempty"`
}

// Send posts msg and reads {id, sent, error} from the reply. Providers send
// "sent" as a string or a bool and "id" as a string or a number.
func (c *GatewayClient) Send(ctx context.Context, msg Message) (string, error) {
	reqBody, err := json.Marshal(sendRequest{
		Token:       c.token,
		To:          msg.To,
		Body:        msg.Body,
		Priority:    msg.Priority,
		ReferenceID: msg.ReferenceID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(body))
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("failed to decode json: body=%q", string(body))
	}

	res := gjson.ParseBytes(body)
	if !res.Get("sent").Bool() {
		reason := strings.TrimSpace(res.Get("error").String())
		if reason == "" {
			reason = "sent is not true"
		}
		return "", fmt.Errorf("%w: %s", ErrRejected, reason)
	}

	id := res.Get("id").String()
	if id == "" {
		return "", fmt.Errorf("missing id in response body=%q", string(body))
	}
	return id, nil
}
