package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultLineEndpoint = "https://api.line.me"

// LineRepository pushes text messages to LINE users through the Messaging
// API. Wire format: POST /v2/bot/message/push with a channel access token.
type LineRepository interface {
	Push(ctx context.Context, userID string, text string) error
}

func NewLineRepository(channelAccessToken string, endpoint string) LineRepository {
	if endpoint == "" {
		endpoint = defaultLineEndpoint
	}
	return &lineRepositoryHandler{
		accessToken: channelAccessToken,
		endpoint:    endpoint,
		client:      http.DefaultClient,
	}
}

type lineRepositoryHandler struct {
	accessToken string
	endpoint    string
	client      *http.Client
}

type linePushRequest struct {
	To       string        `json:"to"`
	Messages []lineMessage `json:"messages"`
}

type lineMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (h *lineRepositoryHandler) Push(ctx context.Context, userID string, text string) error {
	body, err := json.Marshal(linePushRequest{
		To: userID,
		Messages: []lineMessage{
			{Type: "text", Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint+"/v2/bot/message/push", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.accessToken)

	response, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push message to %s: %w", userID, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("push to %s failed with status code %d: %s", userID, response.StatusCode, string(responseBytes))
	}

	return nil
}
