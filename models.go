package pulse

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// requireFields checks that every listed key is present and non-null in the
// raw JSON object. The API contract marks these fields as always present, so
// their absence means the response shape is broken. Each entity implements
// UnmarshalJSON through an alias type plus this check, which keeps a stock
// decode for the fields themselves while rejecting short payloads.
func requireFields(data []byte, entity string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", entity, err)
	}

	for _, field := range fields {
		v, ok := raw[field]
		if !ok || string(v) == "null" {
			return fmt.Errorf("%s: missing required field %q", entity, field)
		}
	}

	return nil
}

// NodeCounts holds aggregate node tallies for the network.
type NodeCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

func (n *NodeCounts) UnmarshalJSON(data []byte) error {
	type alias NodeCounts
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "nodeCounts", "total", "active", "inactive"); err != nil {
		return err
	}

	*n = NodeCounts(a)
	return nil
}

// VersionCount is one bucket of the network version histogram.
type VersionCount struct {
	Version string `json:"version"`
	Count   int64  `json:"count"`
}

func (v *VersionCount) UnmarshalJSON(data []byte) error {
	type alias VersionCount
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "versionCount", "version", "count"); err != nil {
		return err
	}

	*v = VersionCount(a)
	return nil
}

// NetworkMetrics is a fleet-wide aggregate snapshot.
type NetworkMetrics struct {
	TotalStorageBytes int64     `json:"totalStorageBytes"`
	AvgCPUPercent     float64   `json:"avgCpuPercent"`
	AvgRAMPercent     float64   `json:"avgRamPercent"`
	AvgUptimeSeconds  int64     `json:"avgUptimeSeconds"`
	Timestamp         time.Time `json:"timestamp"`
}

func (m *NetworkMetrics) UnmarshalJSON(data []byte) error {
	type alias NetworkMetrics
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "networkMetrics",
		"totalStorageBytes", "avgCpuPercent", "avgRamPercent", "avgUptimeSeconds", "timestamp")
	if err != nil {
		return err
	}

	*m = NetworkMetrics(a)
	return nil
}

// NetworkOverview is the top-level network snapshot returned by GET /network.
type NetworkOverview struct {
	Nodes    NodeCounts     `json:"nodes"`
	Versions []VersionCount `json:"versions"`
	Metrics  NetworkMetrics `json:"metrics"`
}

func (o *NetworkOverview) UnmarshalJSON(data []byte) error {
	type alias NetworkOverview
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "networkOverview", "nodes", "versions", "metrics"); err != nil {
		return err
	}

	*o = NetworkOverview(a)
	return nil
}

// SortedVersions returns the version histogram ordered newest first by
// semantic version. Buckets with unparseable versions sort last; ties are
// broken by node count, larger buckets first.
func (o *NetworkOverview) SortedVersions() []VersionCount {
	out := make([]VersionCount, len(o.Versions))
	copy(out, o.Versions)

	sort.SliceStable(out, func(i, j int) bool {
		vi, errI := goversion.NewVersion(out[i].Version)
		vj, errJ := goversion.NewVersion(out[j].Version)

		switch {
		case errI != nil && errJ != nil:
			return out[i].Count > out[j].Count
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}

		if vi.Equal(vj) {
			return out[i].Count > out[j].Count
		}

		return vi.GreaterThan(vj)
	})

	return out
}

// CPUStats holds the CPU usage distribution across the fleet.
type CPUStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

func (s *CPUStats) UnmarshalJSON(data []byte) error {
	type alias CPUStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "cpuStats", "avg", "min", "max", "p50", "p90", "p99"); err != nil {
		return err
	}

	*s = CPUStats(a)
	return nil
}

// RAMStats holds the RAM usage distribution across the fleet.
type RAMStats struct {
	AvgPercent float64 `json:"avgPercent"`
	MinPercent float64 `json:"minPercent"`
	MaxPercent float64 `json:"maxPercent"`
	P50        float64 `json:"p50"`
	P90        float64 `json:"p90"`
	P99        float64 `json:"p99"`
}

func (s *RAMStats) UnmarshalJSON(data []byte) error {
	type alias RAMStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "ramStats",
		"avgPercent", "minPercent", "maxPercent", "p50", "p90", "p99")
	if err != nil {
		return err
	}

	*s = RAMStats(a)
	return nil
}

// StorageStats holds total and average committed storage in bytes.
type StorageStats struct {
	Total int64 `json:"total"`
	Avg   int64 `json:"avg"`
}

func (s *StorageStats) UnmarshalJSON(data []byte) error {
	type alias StorageStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "storageStats", "total", "avg"); err != nil {
		return err
	}

	*s = StorageStats(a)
	return nil
}

// UptimeStats holds the average node uptime.
type UptimeStats struct {
	AvgSeconds int64 `json:"avgSeconds"`
}

func (s *UptimeStats) UnmarshalJSON(data []byte) error {
	type alias UptimeStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "uptimeStats", "avgSeconds"); err != nil {
		return err
	}

	*s = UptimeStats(a)
	return nil
}

// NetworkStats is the detailed statistics bundle returned by GET /network/stats.
type NetworkStats struct {
	CPU       CPUStats     `json:"cpu"`
	RAM       RAMStats     `json:"ram"`
	Storage   StorageStats `json:"storage"`
	Uptime    UptimeStats  `json:"uptime"`
	NodeCount int64        `json:"nodeCount"`
}

func (s *NetworkStats) UnmarshalJSON(data []byte) error {
	type alias NetworkStats
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "networkStats", "cpu", "ram", "storage", "uptime", "nodeCount"); err != nil {
		return err
	}

	*s = NetworkStats(a)
	return nil
}

// Node is the identity and status of a single fleet participant.
// LastSeen is nil for nodes that registered but never reported.
type Node struct {
	ID        int64      `json:"id"`
	Address   string     `json:"address"`
	Pubkey    *string    `json:"pubkey,omitempty"`
	Version   *string    `json:"version,omitempty"`
	IsActive  bool       `json:"isActive"`
	LastSeen  *time.Time `json:"lastSeen,omitempty"`
	FirstSeen time.Time  `json:"firstSeen"`
}

func (n *Node) UnmarshalJSON(data []byte) error {
	type alias Node
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "node", "id", "address", "isActive", "firstSeen"); err != nil {
		return err
	}

	*n = Node(a)
	return nil
}

// NodeMetricsData is the most recent telemetry sample reported by a node.
type NodeMetricsData struct {
	CPUPercent      *float64  `json:"cpuPercent,omitempty"`
	RAMUsedBytes    int64     `json:"ramUsedBytes"`
	RAMTotalBytes   int64     `json:"ramTotalBytes"`
	RAMPercent      float64   `json:"ramPercent"`
	StorageBytes    int64     `json:"storageBytes"`
	UptimeSeconds   *int64    `json:"uptimeSeconds,omitempty"`
	PacketsReceived *int64    `json:"packetsReceived,omitempty"`
	PacketsSent     *int64    `json:"packetsSent,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func (m *NodeMetricsData) UnmarshalJSON(data []byte) error {
	type alias NodeMetricsData
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "nodeMetricsData",
		"ramUsedBytes", "ramTotalBytes", "ramPercent", "storageBytes", "timestamp")
	if err != nil {
		return err
	}

	*m = NodeMetricsData(a)
	return nil
}

// NodeDetails is a node with its current telemetry and relationship counts.
// Metrics is nil when the node has never reported.
type NodeDetails struct {
	ID           int64            `json:"id"`
	Address      string           `json:"address"`
	Pubkey       *string          `json:"pubkey,omitempty"`
	Version      *string          `json:"version,omitempty"`
	IsActive     bool             `json:"isActive"`
	LastSeen     *time.Time       `json:"lastSeen,omitempty"`
	FirstSeen    time.Time        `json:"firstSeen"`
	Metrics      *NodeMetricsData `json:"metrics,omitempty"`
	PeerCount    int64            `json:"peerCount"`
	MetricsCount int64            `json:"metricsCount"`
}

func (d *NodeDetails) UnmarshalJSON(data []byte) error {
	type alias NodeDetails
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "nodeDetails",
		"id", "address", "isActive", "firstSeen", "peerCount", "metricsCount")
	if err != nil {
		return err
	}

	*d = NodeDetails(a)
	return nil
}

// MetricPoint is one sample of a historical metric series.
type MetricPoint struct {
	Time          time.Time `json:"time"`
	CPUPercent    float64   `json:"cpuPercent"`
	RAMPercent    float64   `json:"ramPercent"`
	StorageBytes  int64     `json:"storageBytes"`
	UptimeSeconds int64     `json:"uptimeSeconds"`
}

func (p *MetricPoint) UnmarshalJSON(data []byte) error {
	type alias MetricPoint
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "metricPoint",
		"time", "cpuPercent", "ramPercent", "storageBytes", "uptimeSeconds")
	if err != nil {
		return err
	}

	*p = MetricPoint(a)
	return nil
}

// NodeMetrics is the historical metric series for one node, ordered
// ascending by time.
type NodeMetrics struct {
	NodeID      int64         `json:"nodeId"`
	Range       string        `json:"range"`
	Aggregation string        `json:"aggregation"`
	Data        []MetricPoint `json:"data"`
}

func (m *NodeMetrics) UnmarshalJSON(data []byte) error {
	type alias NodeMetrics
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "nodeMetrics", "nodeId", "range", "aggregation", "data"); err != nil {
		return err
	}

	*m = NodeMetrics(a)
	return nil
}

// NodesList is one page of the node listing.
type NodesList struct {
	Nodes   []Node `json:"nodes"`
	Total   int64  `json:"total"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	HasMore bool   `json:"hasMore"`
}

func (l *NodesList) UnmarshalJSON(data []byte) error {
	type alias NodesList
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "nodesList", "nodes", "total", "limit", "offset", "hasMore"); err != nil {
		return err
	}

	*l = NodesList(a)
	return nil
}

// LeaderboardMetrics is the metric snapshot backing one leaderboard row.
type LeaderboardMetrics struct {
	UptimeSeconds int64   `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent"`
	RAMPercent    float64 `json:"ramPercent"`
	StorageBytes  int64   `json:"storageBytes"`
}

func (m *LeaderboardMetrics) UnmarshalJSON(data []byte) error {
	type alias LeaderboardMetrics
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "leaderboardMetrics",
		"uptimeSeconds", "cpuPercent", "ramPercent", "storageBytes")
	if err != nil {
		return err
	}

	*m = LeaderboardMetrics(a)
	return nil
}

// LeaderboardEntry is one ranked row. Rank starts at 1 and is strictly
// increasing within a response.
type LeaderboardEntry struct {
	Rank    int                `json:"rank"`
	NodeID  int64              `json:"nodeId"`
	Address string             `json:"address"`
	Version string             `json:"version"`
	Value   float64            `json:"value"`
	Metrics LeaderboardMetrics `json:"metrics"`
}

func (e *LeaderboardEntry) UnmarshalJSON(data []byte) error {
	type alias LeaderboardEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	err := requireFields(data, "leaderboardEntry",
		"rank", "nodeId", "address", "version", "value", "metrics")
	if err != nil {
		return err
	}

	*e = LeaderboardEntry(a)
	return nil
}

// Leaderboard is a ranking of nodes by one metric over one period.
type Leaderboard struct {
	Metric   string             `json:"metric"`
	Period   string             `json:"period"`
	Order    string             `json:"order"`
	Rankings []LeaderboardEntry `json:"rankings"`
}

func (l *Leaderboard) UnmarshalJSON(data []byte) error {
	type alias Leaderboard
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if err := requireFields(data, "leaderboard", "metric", "period", "order", "rankings"); err != nil {
		return err
	}

	*l = Leaderboard(a)
	return nil
}
