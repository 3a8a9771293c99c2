package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bookpicker/core/constants"
	"bookpicker/core/logger"
	"bookpicker/modules/insights/dto"

	"github.com/google/uuid"
)

// Client is the insights collaborator contract: register a picked subject to
// obtain a collaboration link, start an event to obtain a summary link,
// finish an event. One call per operation, no retries at this layer.
type Client interface {
	RegisterEvent(ctx context.Context, req dto.RegisterEventRequest) (string, error)
	StartEvent(ctx context.Context, eventID uuid.UUID) (string, error)
	FinishEvent(ctx context.Context, eventID uuid.UUID) error
}

type HTTPClient struct {
	client  *http.Client
	address string
}

func NewHTTPClient(address string) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: constants.DefaultTimeout},
		address: address,
	}
}

func (c *HTTPClient) RegisterEvent(ctx context.Context, req dto.RegisterEventRequest) (string, error) {
	var resp dto.RegisterEventResponse
	if err := c.post(ctx, "/api/v1/event/register", req, &resp); err != nil {
		return "", err
	}
	return resp.InsightsLink, nil
}

func (c *HTTPClient) StartEvent(ctx context.Context, eventID uuid.UUID) (string, error) {
	var resp dto.StartEventResponse
	if err := c.post(ctx, "/api/v1/event/start", dto.ManageEventRequest{EventID: eventID}, &resp); err != nil {
		return "", err
	}
	return resp.SummaryLink, nil
}

func (c *HTTPClient) FinishEvent(ctx context.Context, eventID uuid.UUID) error {
	return c.post(ctx, "/api/v1/event/finish", dto.ManageEventRequest{EventID: eventID}, nil)
}

func (c *HTTPClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Error("InsightsClient:Post", "path", path, "error", err)
		return fmt.Errorf("insights request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("InsightsClient:Post", "path", path, "status", resp.StatusCode)
		return fmt.Errorf("insights responded with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("InsightsClient:Post:Decode", "path", path, "error", err)
		return fmt.Errorf("decode insights response: %w", err)
	}
	return nil
}
