package pulse

import (
	"context"
	"net/url"
	"strconv"
)

const pathLeaderboard = "/api/v1/leaderboard"

// LeaderboardMetric selects the ranking metric.
type LeaderboardMetric string

// Ranking metrics.
const (
	MetricUptime  LeaderboardMetric = "uptime"
	MetricCPU     LeaderboardMetric = "cpu"
	MetricRAM     LeaderboardMetric = "ram"
	MetricStorage LeaderboardMetric = "storage"
)

// LeaderboardOrder selects which end of the ranking is returned.
type LeaderboardOrder string

// Ranking directions.
const (
	OrderTop    LeaderboardOrder = "top"
	OrderBottom LeaderboardOrder = "bottom"
)

// Period is the time window a leaderboard is computed over.
type Period string

// Leaderboard periods.
const (
	Period24h Period = "24h"
	Period7d  Period = "7d"
	Period30d Period = "30d"
	PeriodAll Period = "all"
)

// LeaderboardParams selects the metric, direction, size, and window of a
// ranking. Zero values default to the top 10 by uptime over 7 days.
type LeaderboardParams struct {
	Metric LeaderboardMetric
	Order  LeaderboardOrder
	Limit  int
	Period Period
}

// LeaderboardService exposes the ranking endpoints.
type LeaderboardService struct {
	client *Client
}

// Get returns node rankings by the selected metric.
func (s *LeaderboardService) Get(ctx context.Context, params *LeaderboardParams) (*Leaderboard, error) {
	query, err := buildLeaderboardQuery(params)
	if err != nil {
		return nil, err
	}

	return getJSON[Leaderboard](ctx, s.client, pathLeaderboard, query)
}

// TopUptime returns the top performers by uptime over the default period.
func (s *LeaderboardService) TopUptime(ctx context.Context, limit int) (*Leaderboard, error) {
	return s.Get(ctx, &LeaderboardParams{Metric: MetricUptime, Order: OrderTop, Limit: limit})
}

// TopEfficiency returns the most efficient nodes by CPU usage. The parameter
// mapping (metric=cpu, order=top) follows the server contract; the ranking
// direction for the cpu metric is decided server-side.
func (s *LeaderboardService) TopEfficiency(ctx context.Context, limit int) (*Leaderboard, error) {
	return s.Get(ctx, &LeaderboardParams{Metric: MetricCPU, Order: OrderTop, Limit: limit})
}

// TopStorage returns the highest storage capacity nodes.
func (s *LeaderboardService) TopStorage(ctx context.Context, limit int) (*Leaderboard, error) {
	return s.Get(ctx, &LeaderboardParams{Metric: MetricStorage, Order: OrderTop, Limit: limit})
}

func buildLeaderboardQuery(params *LeaderboardParams) (url.Values, error) {
	p := LeaderboardParams{}
	if params != nil {
		p = *params
	}

	if p.Metric == "" {
		p.Metric = MetricUptime
	}
	if p.Order == "" {
		p.Order = OrderTop
	}
	if p.Limit == 0 {
		p.Limit = 10
	}
	if p.Period == "" {
		p.Period = Period7d
	}

	switch p.Metric {
	case MetricUptime, MetricCPU, MetricRAM, MetricStorage:
	default:
		return nil, newValidationError("invalid leaderboard metric %q", p.Metric)
	}

	switch p.Order {
	case OrderTop, OrderBottom:
	default:
		return nil, newValidationError("invalid leaderboard order %q", p.Order)
	}

	switch p.Period {
	case Period24h, Period7d, Period30d, PeriodAll:
	default:
		return nil, newValidationError("invalid leaderboard period %q", p.Period)
	}

	return url.Values{
		"metric": {string(p.Metric)},
		"order":  {string(p.Order)},
		"limit":  {strconv.Itoa(p.Limit)},
		"period": {string(p.Period)},
	}, nil
}
