package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nickolaa/konsol-pro-clone/internal/config"
	"github.com/nickolaa/konsol-pro-clone/pkg/clients"
)

// Client talks to the external document renderer. The renderer turns the
// snapshot fields into an immutable artifact and answers with its storage
// locator; only the locator is kept here.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.RendererAddress,
		client: client,
	}
}

type renderRequest struct {
	Kind           string         `json:"kind"`
	Fields         map[string]any `json:"fields"`
	IdempotencyKey string         `json:"idempotency_key"`
}

type renderResponse struct {
	Location string `json:"location"`
}

func (c *Client) Render(ctx context.Context, kind string, fields map[string]any) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	body, err := json.Marshal(renderRequest{
		Kind:           kind,
		Fields:         fields,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal render request: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	statusCode, respBody, _, err := c.client.Post(c.url+"/api/render", headers, body)
	if err != nil {
		return "", fmt.Errorf("render request failed: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		zap.L().Error("renderer returned unexpected status", zap.Int("status", statusCode), zap.String("kind", kind))
		return "", fmt.Errorf("renderer returned status %d", statusCode)
	}

	var response renderResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("failed to parse render response: %w", err)
	}
	if response.Location == "" {
		return "", fmt.Errorf("renderer returned empty location")
	}
	return response.Location, nil
}
