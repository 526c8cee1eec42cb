package pulse

import "context"

const (
	pathNetwork      = "/api/v1/network"
	pathNetworkStats = "/api/v1/network/stats"
)

// NetworkService exposes the network-level endpoints.
type NetworkService struct {
	client *Client
}

// GetOverview returns node counts, the version histogram, and aggregate
// fleet metrics.
func (s *NetworkService) GetOverview(ctx context.Context) (*NetworkOverview, error) {
	return getJSON[NetworkOverview](ctx, s.client, pathNetwork, nil)
}

// GetStats returns detailed network statistics with percentile distributions.
func (s *NetworkService) GetStats(ctx context.Context) (*NetworkStats, error) {
	return getJSON[NetworkStats](ctx, s.client, pathNetworkStats, nil)
}
