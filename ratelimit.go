package pulse

import (
	"net/http"
	"strconv"
)

// Rate-limit headers sent by the API on every response.
const (
	headerRateLimitLimit     = "X-RateLimit-Limit"
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRateLimitReset     = "X-RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// RateLimitInfo is the quota snapshot carried on every response, success or
// error. Reset is epoch seconds.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     int64
}

// parseRateLimit reads the three quota headers. Missing or malformed values
// degrade to zero, never to an error.
func parseRateLimit(h http.Header) RateLimitInfo {
	return RateLimitInfo{
		Limit:     headerInt(h, headerRateLimitLimit),
		Remaining: headerInt(h, headerRateLimitRemaining),
		Reset:     int64(headerInt(h, headerRateLimitReset)),
	}
}

func headerInt(h http.Header, key string) int {
	v, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return 0
	}

	return v
}
