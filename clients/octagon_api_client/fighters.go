package octagon_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Fighter struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Nickname *string   `json:"nickname"`
	Division string    `json:"division"`
	Wins     int       `json:"wins"`
	Losses   int       `json:"losses"`
	Draws    int       `json:"draws"`
}

type fighterResponse struct {
	Errors   map[string]interface{} `json:"errors"`
	Response Fighter                `json:"response"`
}

func (c *OctagonApiClient) GetFighter(ctx context.Context, fighterID uuid.UUID) (*Fighter, error) {
	body, err := c.Get(ctx, fmt.Sprintf(FighterEndpoint, fighterID))
	if err != nil {
		return nil, fmt.Errorf("failed to get fighter: %w", err)
	}

	var response fighterResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("API returned errors: %v", response.Errors)
	}

	return &response.Response, nil
}
