package middleware

import (
	"shareit/pkg/log"
	"shareit/pkg/scope"
)

// Config carries the tunables of the shared middleware chain.
type Config struct {
	RateLimitPerMin int
	AllowedOrigins  []string
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
	config     Config
}

// New builds the middleware set. jwtManager may be nil, in which case only the
// identity header is accepted.
func New(l log.Logger, jwtManager scope.Manager, cfg Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(cfg.RateLimitPerMin),
		config:     cfg,
	}
}
