package octagon_api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Date            time.Time  `json:"date"`
	Status          string     `json:"status"`
	PrelimsStartAt  *time.Time `json:"prelims_start_at"`
	MainCardStartAt *time.Time `json:"main_card_start_at"`
}

type FightResult struct {
	WinnerID *uuid.UUID `json:"winner_id"`
	Method   string     `json:"method"`
	Round    *int       `json:"round"`
	Time     *string    `json:"time"`
}

type Fight struct {
	ID         uuid.UUID    `json:"id"`
	EventID    uuid.UUID    `json:"event_id"`
	FighterAID uuid.UUID    `json:"fighter_a_id"`
	FighterBID uuid.UUID    `json:"fighter_b_id"`
	Division   string       `json:"division"`
	Rounds     int          `json:"rounds"`
	IsMainCard bool         `json:"is_main_card"`
	Status     string       `json:"status"`
	Result     *FightResult `json:"result"`
}

type Card struct {
	Event  Event   `json:"event"`
	Fights []Fight `json:"fights"`
}

type eventsResponse struct {
	Errors   map[string]interface{} `json:"errors"`
	Results  int                    `json:"results"`
	Response []Event                `json:"response"`
}

type cardResponse struct {
	Errors   map[string]interface{} `json:"errors"`
	Response Card                   `json:"response"`
}

// GetEvents lists upcoming and in-progress events.
func (c *OctagonApiClient) GetEvents(ctx context.Context) ([]Event, error) {
	body, err := c.Get(ctx, EventsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	var response eventsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("API returned errors: %v", response.Errors)
	}

	return response.Response, nil
}

// GetEventCard fetches an event together with its full bout list, including
// any results reported so far.
func (c *OctagonApiClient) GetEventCard(ctx context.Context, eventID uuid.UUID) (*Card, error) {
	body, err := c.Get(ctx, fmt.Sprintf(CardEndpoint, eventID))
	if err != nil {
		return nil, fmt.Errorf("failed to get event card: %w", err)
	}

	var response cardResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if len(response.Errors) > 0 {
		return nil, fmt.Errorf("API returned errors: %v", response.Errors)
	}

	return &response.Response, nil
}
