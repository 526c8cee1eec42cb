package pulse

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const pathNodes = "/api/v1/nodes"

// NodeStatus filters the node listing by activity.
type NodeStatus string

// Node status filter values.
const (
	NodeStatusAll      NodeStatus = "all"
	NodeStatusActive   NodeStatus = "active"
	NodeStatusInactive NodeStatus = "inactive"
)

// NodeOrderBy selects the sort column of the node listing.
type NodeOrderBy string

// Node listing sort columns.
const (
	OrderByLastSeen  NodeOrderBy = "lastSeen"
	OrderByFirstSeen NodeOrderBy = "firstSeen"
	OrderByAddress   NodeOrderBy = "address"
	OrderByVersion   NodeOrderBy = "version"
)

// SortOrder is the listing sort direction.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// MetricRange is the time window of a historical metric query.
type MetricRange string

// Historical metric windows.
const (
	Range1h  MetricRange = "1h"
	Range24h MetricRange = "24h"
	Range7d  MetricRange = "7d"
	Range30d MetricRange = "30d"
)

// Aggregation is the temporal bucketing of a historical metric series.
type Aggregation string

// Aggregation levels.
const (
	AggregationRaw    Aggregation = "raw"
	AggregationHourly Aggregation = "hourly"
	AggregationDaily  Aggregation = "daily"
)

// ListNodesParams filters and paginates the node listing. Zero values fall
// back to the documented defaults: status "all", limit 50, offset 0,
// ordered by lastSeen descending. Version and Search are sent only when
// non-empty.
type ListNodesParams struct {
	Status  NodeStatus
	Version string
	Search  string
	Limit   int
	Offset  int
	OrderBy NodeOrderBy
	Order   SortOrder
}

// NodeMetricsParams selects the window and bucketing of a historical metric
// query. Zero values default to a 24h range with hourly aggregation.
type NodeMetricsParams struct {
	Range       MetricRange
	Aggregation Aggregation
}

// NodesService exposes the node-level endpoints.
type NodesService struct {
	client *Client
}

// List returns one page of nodes. Pagination is caller-driven through
// Limit and Offset; the client never walks pages on its own.
func (s *NodesService) List(ctx context.Context, params *ListNodesParams) (*NodesList, error) {
	query, err := buildListNodesQuery(params)
	if err != nil {
		return nil, err
	}

	return getJSON[NodesList](ctx, s.client, pathNodes, query)
}

// Get returns detailed information about one node, addressed by numeric id
// or network address. A 404 from the server surfaces as *NotFoundError.
func (s *NodesService) Get(ctx context.Context, idOrAddress string) (*NodeDetails, error) {
	if idOrAddress == "" {
		return nil, newValidationError("node id or address must not be empty")
	}

	path := fmt.Sprintf("%s/%s", pathNodes, url.PathEscape(idOrAddress))
	return getJSON[NodeDetails](ctx, s.client, path, nil)
}

// GetByID is Get for a numeric node id.
func (s *NodesService) GetByID(ctx context.Context, id int64) (*NodeDetails, error) {
	return s.Get(ctx, strconv.FormatInt(id, 10))
}

// GetMetrics returns the historical metric series for one node.
func (s *NodesService) GetMetrics(ctx context.Context, nodeID int64, params *NodeMetricsParams) (*NodeMetrics, error) {
	query, err := buildNodeMetricsQuery(params)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%d/metrics", pathNodes, nodeID)
	return getJSON[NodeMetrics](ctx, s.client, path, query)
}

func buildListNodesQuery(params *ListNodesParams) (url.Values, error) {
	p := ListNodesParams{}
	if params != nil {
		p = *params
	}

	if p.Status == "" {
		p.Status = NodeStatusAll
	}
	if p.Limit == 0 {
		p.Limit = 50
	}
	if p.OrderBy == "" {
		p.OrderBy = OrderByLastSeen
	}
	if p.Order == "" {
		p.Order = SortDesc
	}

	switch p.Status {
	case NodeStatusAll, NodeStatusActive, NodeStatusInactive:
	default:
		return nil, newValidationError("invalid node status %q", p.Status)
	}

	switch p.OrderBy {
	case OrderByLastSeen, OrderByFirstSeen, OrderByAddress, OrderByVersion:
	default:
		return nil, newValidationError("invalid orderBy %q", p.OrderBy)
	}

	switch p.Order {
	case SortAsc, SortDesc:
	default:
		return nil, newValidationError("invalid sort order %q", p.Order)
	}

	query := url.Values{
		"status":  {string(p.Status)},
		"limit":   {strconv.Itoa(p.Limit)},
		"offset":  {strconv.Itoa(p.Offset)},
		"orderBy": {string(p.OrderBy)},
		"order":   {string(p.Order)},
	}

	if p.Version != "" {
		query.Set("version", p.Version)
	}
	if p.Search != "" {
		query.Set("search", p.Search)
	}

	return query, nil
}

func buildNodeMetricsQuery(params *NodeMetricsParams) (url.Values, error) {
	p := NodeMetricsParams{}
	if params != nil {
		p = *params
	}

	if p.Range == "" {
		p.Range = Range24h
	}
	if p.Aggregation == "" {
		p.Aggregation = AggregationHourly
	}

	switch p.Range {
	case Range1h, Range24h, Range7d, Range30d:
	default:
		return nil, newValidationError("invalid metric range %q", p.Range)
	}

	switch p.Aggregation {
	case AggregationRaw, AggregationHourly, AggregationDaily:
	default:
		return nil, newValidationError("invalid aggregation %q", p.Aggregation)
	}

	return url.Values{
		"range":       {string(p.Range)},
		"aggregation": {string(p.Aggregation)},
	}, nil
}
