// Package pulse provides a typed Go client for the pNode Pulse monitoring
// API, which exposes network-wide and per-node telemetry for the pNode
// fleet: counts, CPU/RAM/storage/uptime statistics, historical time series,
// and ranked leaderboards.
//
// # Clients
//
// Two clients share one surface. [Client] is synchronous: every method takes
// a context and blocks until the response arrives. [AsyncClient] exposes the
// same facades with the same parameters, but each method returns a result
// channel so independent calls can run concurrently. Both are read-only
// consumers of the API; neither caches, retries, or paginates on its own.
//
//	client := pulse.New(pulse.WithAPIKey("pk_live_..."))
//	defer client.Close()
//
//	overview, err := client.Network.GetOverview(ctx)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("active nodes: %d\n", overview.Nodes.Active)
//
// # Authentication
//
// The API key is optional and sent via the X-API-Key header. Without a key
// requests run on the anonymous tier, which the server rate-limits more
// aggressively. Every response carries the current quota in the
// X-RateLimit-* headers, surfaced through [RateLimitInfo].
//
// # Errors
//
// Non-2xx responses and transport failures map to a closed taxonomy checked
// with errors.As:
//
//   - [RateLimitError]: quota exhausted (429), carries RetryAfter seconds.
//   - [NotFoundError]: resource absent (404).
//   - [AuthenticationError]: missing or invalid key (401).
//   - [ValidationError]: request rejected client-side, or a 2xx body that
//     violates the wire contract.
//   - [TimeoutError]: the configured timeout elapsed.
//   - [NetworkError]: transport failure before any response existed.
//   - [APIError]: any other non-2xx status.
//
// The client never retries. On a RateLimitError, inspect RetryAfter and
// re-issue the call when the window reopens.
package pulse
