package pulse

// Response bodies matching the wire contract, shared across tests.
const (
	networkOverviewJSON = `{
		"nodes": {"total": 224, "active": 180, "inactive": 44},
		"versions": [
			{"version": "0.8.0", "count": 120},
			{"version": "0.7.3", "count": 60},
			{"version": "0.10.1", "count": 40},
			{"version": "garbage", "count": 4}
		],
		"metrics": {
			"totalStorageBytes": 549755813888,
			"avgCpuPercent": 12.5,
			"avgRamPercent": 41.3,
			"avgUptimeSeconds": 864000,
			"timestamp": "2024-01-15T10:30:00Z"
		}
	}`

	networkStatsJSON = `{
		"cpu": {"avg": 12.5, "min": 0.1, "max": 98.2, "p50": 10.0, "p90": 35.5, "p99": 80.1},
		"ram": {"avgPercent": 41.3, "minPercent": 5.0, "maxPercent": 97.0, "p50": 40.0, "p90": 75.0, "p99": 95.0},
		"storage": {"total": 549755813888, "avg": 2454267026},
		"uptime": {"avgSeconds": 864000},
		"nodeCount": 224
	}`

	nodesListJSON = `{
		"nodes": [
			{
				"id": 1,
				"address": "192.0.2.10:9001",
				"pubkey": "ed25519:abc",
				"version": "0.8.0",
				"isActive": true,
				"lastSeen": "2024-01-15T10:29:00Z",
				"firstSeen": "2023-11-01T00:00:00Z"
			},
			{
				"id": 2,
				"address": "192.0.2.11:9001",
				"isActive": false,
				"firstSeen": "2023-12-01T00:00:00Z"
			}
		],
		"total": 224,
		"limit": 50,
		"offset": 0,
		"hasMore": true
	}`

	nodeDetailsJSON = `{
		"id": 1,
		"address": "192.0.2.10:9001",
		"pubkey": "ed25519:abc",
		"version": "0.8.0",
		"isActive": true,
		"lastSeen": "2024-01-15T10:29:00Z",
		"firstSeen": "2023-11-01T00:00:00Z",
		"metrics": {
			"cpuPercent": 8.2,
			"ramUsedBytes": 2147483648,
			"ramTotalBytes": 8589934592,
			"ramPercent": 25.0,
			"storageBytes": 10737418240,
			"uptimeSeconds": 432000,
			"packetsReceived": 123456,
			"packetsSent": 654321,
			"timestamp": "2024-01-15T10:29:00Z"
		},
		"peerCount": 12,
		"metricsCount": 4812
	}`

	nodeMetricsJSON = `{
		"nodeId": 1,
		"range": "24h",
		"aggregation": "hourly",
		"data": [
			{"time": "2024-01-15T08:00:00Z", "cpuPercent": 7.5, "ramPercent": 24.1, "storageBytes": 10737418240, "uptimeSeconds": 424800},
			{"time": "2024-01-15T09:00:00Z", "cpuPercent": 9.1, "ramPercent": 25.8, "storageBytes": 10737418240, "uptimeSeconds": 428400}
		]
	}`

	leaderboardJSON = `{
		"metric": "uptime",
		"period": "7d",
		"order": "top",
		"rankings": [
			{
				"rank": 1,
				"nodeId": 7,
				"address": "192.0.2.20:9001",
				"version": "0.8.0",
				"value": 604800,
				"metrics": {"uptimeSeconds": 604800, "cpuPercent": 4.2, "ramPercent": 30.1, "storageBytes": 5368709120}
			},
			{
				"rank": 2,
				"nodeId": 3,
				"address": "192.0.2.21:9001",
				"version": "0.7.3",
				"value": 598000,
				"metrics": {"uptimeSeconds": 598000, "cpuPercent": 6.0, "ramPercent": 28.4, "storageBytes": 4294967296}
			}
		]
	}`
)
