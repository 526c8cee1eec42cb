package pulse

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodesListDefaultQuery(t *testing.T) {
	var gotQuery url.Values
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(nodesListJSON))
	})

	list, err := client.Nodes.List(context.Background(), nil)
	require.NoError(t, err)

	want := url.Values{
		"status":  {"all"},
		"limit":   {"50"},
		"offset":  {"0"},
		"orderBy": {"lastSeen"},
		"order":   {"desc"},
	}
	assert.Equal(t, want, gotQuery)

	require.Len(t, list.Nodes, 2)
	assert.Equal(t, int64(224), list.Total)
	assert.True(t, list.HasMore)

	first := list.Nodes[0]
	require.NotNil(t, first.Pubkey)
	assert.Equal(t, "ed25519:abc", *first.Pubkey)
	require.NotNil(t, first.LastSeen)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 29, 0, 0, time.UTC), *first.LastSeen)

	second := list.Nodes[1]
	assert.Nil(t, second.Pubkey)
	assert.Nil(t, second.Version)
	assert.Nil(t, second.LastSeen, "lastSeen absent for a node never seen")
	assert.False(t, second.IsActive)
}

func TestNodesListFilters(t *testing.T) {
	var gotQuery url.Values
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(nodesListJSON))
	})

	_, err := client.Nodes.List(context.Background(), &ListNodesParams{
		Status:  NodeStatusActive,
		Version: "1.2.3",
		Search:  "192.0.2",
		Limit:   25,
		Offset:  50,
		OrderBy: OrderByAddress,
		Order:   SortAsc,
	})
	require.NoError(t, err)

	want := url.Values{
		"status":  {"active"},
		"version": {"1.2.3"},
		"search":  {"192.0.2"},
		"limit":   {"25"},
		"offset":  {"50"},
		"orderBy": {"address"},
		"order":   {"asc"},
	}
	assert.Equal(t, want, gotQuery)
}

func TestNodesListInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params ListNodesParams
	}{
		{"bad status", ListNodesParams{Status: "running"}},
		{"bad orderBy", ListNodesParams{OrderBy: "uptime"}},
		{"bad order", ListNodesParams{Order: "descending"}},
	}

	client := New()
	defer func() { _ = client.Close() }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Nodes.List(context.Background(), &tt.params)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, CodeValidation, ve.Code)
			assert.Equal(t, 400, ve.Status)
		})
	}
}

func TestNodesGet(t *testing.T) {
	var gotPath string
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(nodeDetailsJSON))
	})

	t.Run("by address", func(t *testing.T) {
		details, err := client.Nodes.Get(context.Background(), "192.0.2.10:9001")
		require.NoError(t, err)

		assert.Equal(t, "/api/v1/nodes/192.0.2.10:9001", gotPath)
		assert.Equal(t, int64(1), details.ID)
		assert.Equal(t, int64(12), details.PeerCount)
		assert.Equal(t, int64(4812), details.MetricsCount)
		require.NotNil(t, details.Metrics)
		require.NotNil(t, details.Metrics.CPUPercent)
		assert.InDelta(t, 8.2, *details.Metrics.CPUPercent, 1e-9)
		assert.Equal(t, int64(2147483648), details.Metrics.RAMUsedBytes)
	})

	t.Run("by id", func(t *testing.T) {
		_, err := client.Nodes.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/nodes/1", gotPath)
	})

	t.Run("empty identifier rejected client-side", func(t *testing.T) {
		_, err := client.Nodes.Get(context.Background(), "")

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestNodesGetNotFound(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Node not found","code":"NOT_FOUND"}}`))
	})

	_, err := client.Nodes.Get(context.Background(), "999999")

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Node not found", nfe.Message)
}

func TestNodesGetNodeWithoutMetrics(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": 2,
			"address": "192.0.2.11:9001",
			"isActive": false,
			"firstSeen": "2023-12-01T00:00:00Z",
			"peerCount": 0,
			"metricsCount": 0
		}`))
	})

	details, err := client.Nodes.Get(context.Background(), "2")
	require.NoError(t, err)

	assert.Nil(t, details.Metrics, "metrics absent when the node never reported")
}

func TestNodesGetMetrics(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(nodeMetricsJSON))
	})

	t.Run("defaults", func(t *testing.T) {
		metrics, err := client.Nodes.GetMetrics(context.Background(), 1, nil)
		require.NoError(t, err)

		assert.Equal(t, "/api/v1/nodes/1/metrics", gotPath)
		assert.Equal(t, url.Values{"range": {"24h"}, "aggregation": {"hourly"}}, gotQuery)

		assert.Equal(t, int64(1), metrics.NodeID)
		require.Len(t, metrics.Data, 2)
		assert.True(t, metrics.Data[0].Time.Before(metrics.Data[1].Time))
	})

	t.Run("explicit window", func(t *testing.T) {
		_, err := client.Nodes.GetMetrics(context.Background(), 42, &NodeMetricsParams{
			Range:       Range7d,
			Aggregation: AggregationDaily,
		})
		require.NoError(t, err)

		assert.Equal(t, "/api/v1/nodes/42/metrics", gotPath)
		assert.Equal(t, url.Values{"range": {"7d"}, "aggregation": {"daily"}}, gotQuery)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := client.Nodes.GetMetrics(context.Background(), 1, &NodeMetricsParams{Range: "2h"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("invalid aggregation", func(t *testing.T) {
		_, err := client.Nodes.GetMetrics(context.Background(), 1, &NodeMetricsParams{Aggregation: "weekly"})

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestNodesListMissingRequiredField(t *testing.T) {
	// total is required in the paginated listing.
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"nodes": [],
			"limit": 50,
			"offset": 0,
			"hasMore": false
		}`))
	})

	_, err := client.Nodes.List(context.Background(), nil)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, CodeValidation, ve.Code)
	assert.Contains(t, ve.Message, "total")
}
