package octagon_api_client

const (
	// Base URL
	DefaultBaseURL = "https://api.octagon-data.io/v1"

	// API Endpoints
	EventsEndpoint   = "/events"
	CardEndpoint     = "/events/%s/card"
	FighterEndpoint  = "/fighters/%s"
	FightersEndpoint = "/fighters"

	// Headers
	APIKeyHeader = "X-Api-Key"

	// Event statuses as the API reports them
	APIStatusScheduled = "scheduled"
	APIStatusLive      = "live"
	APIStatusFinished  = "finished"
)
