package pulse

import "context"

// Result carries the outcome of one asynchronous call. Exactly one of Value
// and Err is meaningful.
type Result[T any] struct {
	Value T
	Err   error
}

// asyncCall runs f in its own goroutine and delivers the single outcome on a
// buffered channel, so an abandoned call never leaks the goroutine.
func asyncCall[T any](f func() (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	go func() {
		v, err := f()
		ch <- Result[T]{Value: v, Err: err}
	}()

	return ch
}

// AsyncClient is the concurrent pNode Pulse API client. It exposes the same
// three facades with the same method names and parameters as Client; the
// only difference is that each method returns a result channel instead of
// blocking. Path building, query encoding, and decoding are the exact same
// code paths as the synchronous client, so both produce identical results
// for identical responses.
//
// Callers wanting fan-out issue several calls and receive from the channels
// afterwards; the client holds no per-call state, so any number of calls may
// run concurrently.
type AsyncClient struct {
	Network     *AsyncNetworkService
	Nodes       *AsyncNodesService
	Leaderboard *AsyncLeaderboardService

	client *Client
}

// NewAsync creates an AsyncClient with the given options.
func NewAsync(opts ...Option) *AsyncClient {
	c := New(opts...)

	return &AsyncClient{
		Network:     &AsyncNetworkService{sync: c.Network},
		Nodes:       &AsyncNodesService{sync: c.Nodes},
		Leaderboard: &AsyncLeaderboardService{sync: c.Leaderboard},
		client:      c,
	}
}

// Close releases the transport. In-flight calls complete; later calls fail
// fast with ErrClientClosed.
func (a *AsyncClient) Close() error {
	return a.client.Close()
}

// LastRateLimit returns the quota snapshot from the most recent response.
func (a *AsyncClient) LastRateLimit() RateLimitInfo {
	return a.client.LastRateLimit()
}

// AsyncNetworkService exposes the network-level endpoints concurrently.
type AsyncNetworkService struct {
	sync *NetworkService
}

// GetOverview returns node counts, the version histogram, and aggregate
// fleet metrics.
func (s *AsyncNetworkService) GetOverview(ctx context.Context) <-chan Result[*NetworkOverview] {
	return asyncCall(func() (*NetworkOverview, error) { return s.sync.GetOverview(ctx) })
}

// GetStats returns detailed network statistics with percentile distributions.
func (s *AsyncNetworkService) GetStats(ctx context.Context) <-chan Result[*NetworkStats] {
	return asyncCall(func() (*NetworkStats, error) { return s.sync.GetStats(ctx) })
}

// AsyncNodesService exposes the node-level endpoints concurrently.
type AsyncNodesService struct {
	sync *NodesService
}

// List returns one page of nodes.
func (s *AsyncNodesService) List(ctx context.Context, params *ListNodesParams) <-chan Result[*NodesList] {
	return asyncCall(func() (*NodesList, error) { return s.sync.List(ctx, params) })
}

// Get returns detailed information about one node by id or address.
func (s *AsyncNodesService) Get(ctx context.Context, idOrAddress string) <-chan Result[*NodeDetails] {
	return asyncCall(func() (*NodeDetails, error) { return s.sync.Get(ctx, idOrAddress) })
}

// GetByID is Get for a numeric node id.
func (s *AsyncNodesService) GetByID(ctx context.Context, id int64) <-chan Result[*NodeDetails] {
	return asyncCall(func() (*NodeDetails, error) { return s.sync.GetByID(ctx, id) })
}

// GetMetrics returns the historical metric series for one node.
func (s *AsyncNodesService) GetMetrics(ctx context.Context, nodeID int64, params *NodeMetricsParams) <-chan Result[*NodeMetrics] {
	return asyncCall(func() (*NodeMetrics, error) { return s.sync.GetMetrics(ctx, nodeID, params) })
}

// AsyncLeaderboardService exposes the ranking endpoints concurrently.
type AsyncLeaderboardService struct {
	sync *LeaderboardService
}

// Get returns node rankings by the selected metric.
func (s *AsyncLeaderboardService) Get(ctx context.Context, params *LeaderboardParams) <-chan Result[*Leaderboard] {
	return asyncCall(func() (*Leaderboard, error) { return s.sync.Get(ctx, params) })
}

// TopUptime returns the top performers by uptime over the default period.
func (s *AsyncLeaderboardService) TopUptime(ctx context.Context, limit int) <-chan Result[*Leaderboard] {
	return asyncCall(func() (*Leaderboard, error) { return s.sync.TopUptime(ctx, limit) })
}

// TopEfficiency returns the most efficient nodes by CPU usage.
func (s *AsyncLeaderboardService) TopEfficiency(ctx context.Context, limit int) <-chan Result[*Leaderboard] {
	return asyncCall(func() (*Leaderboard, error) { return s.sync.TopEfficiency(ctx, limit) })
}

// TopStorage returns the highest storage capacity nodes.
func (s *AsyncLeaderboardService) TopStorage(ctx context.Context, limit int) <-chan Result[*Leaderboard] {
	return asyncCall(func() (*Leaderboard, error) { return s.sync.TopStorage(ctx, limit) })
}
