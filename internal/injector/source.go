package injector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope mirrors the JSON body of the config endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    *ConfigData `json:"data"`
	Message string      `json:"message"`
}

// ConfigData is the data member of a successful config response.
// CrateOptions is kept loosely typed: every key is forwarded to the Crate.
type ConfigData struct {
	ServerID     string         `json:"server_id"`
	ChannelID    string         `json:"channel_id"`
	CrateOptions map[string]any `json:"crate_options"`
}

// ConfigSource fetches the widget configuration envelope.
type ConfigSource interface {
	FetchConfig(ctx context.Context) (*Envelope, error)
}

// HTTPSource fetches the envelope from the public config endpoint.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// FetchConfig implements ConfigSource. Non-2xx responses still carry an
// envelope and are decoded rather than treated as transport errors.
func (s *HTTPSource) FetchConfig(ctx context.Context) (*Envelope, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building config request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching config: %w", err)
	}
	defer resp.Body.Close()

	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding config response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}
