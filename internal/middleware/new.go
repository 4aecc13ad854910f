package middleware

import (
	"mutual-availability/pkg/log"
)

type Middleware struct {
	l           log.Logger
	apiKey      string
	rateLimiter *rateLimiter
}

// New creates the middleware set. An empty apiKey disables authentication;
// requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, apiKey string, requestsPerMin int) Middleware {
	var rl *rateLimiter
	if requestsPerMin > 0 {
		rl = newRateLimiter(requestsPerMin)
	}
	return Middleware{
		l:           l,
		apiKey:      apiKey,
		rateLimiter: rl,
	}
}
