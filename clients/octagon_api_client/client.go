package octagon_api_client

import (
	"github.com/Matthieu-Gauthier/octagon-sub000/clients"
)

type OctagonApiClient struct {
	*clients.BaseClient
}

func NewOctagonApiClient(baseURL, apiKey string) *OctagonApiClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &OctagonApiClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	if apiKey != "" {
		client.SetHeader(APIKeyHeader, apiKey)
	}

	return client
}
