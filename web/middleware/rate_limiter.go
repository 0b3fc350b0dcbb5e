package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultMaxClients = 10000

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	RequestsPerMinute int // Sustained requests per client per minute
	BurstSize         int // Allow burst of N requests
	MaxClients        int // Clients tracked at once; least recently seen are forgotten
}

// ClientRateLimiter keeps one token bucket per client IP.
type ClientRateLimiter struct {
	config  RateLimiterConfig
	every   rate.Limit
	buckets *lru.Cache
	logger  *zap.Logger
}

func NewClientRateLimiter(config RateLimiterConfig, logger *zap.Logger) (*ClientRateLimiter, error) {
	if config.BurstSize <= 0 {
		config.BurstSize = 1
	}
	if config.MaxClients <= 0 {
		config.MaxClients = defaultMaxClients
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	buckets, err := lru.New(config.MaxClients)
	if err != nil {
		return nil, err
	}
	return &ClientRateLimiter{
		config:  config,
		every:   rate.Limit(float64(config.RequestsPerMinute) / 60.0),
		buckets: buckets,
		logger:  logger,
	}, nil
}

func (crl *ClientRateLimiter) bucket(client string) *rate.Limiter {
	if v, ok := crl.buckets.Get(client); ok {
		return v.(*rate.Limiter)
	}
	fresh := rate.NewLimiter(crl.every, crl.config.BurstSize)
	prev, found, _ := crl.buckets.PeekOrAdd(client, fresh)
	if found {
		return prev.(*rate.Limiter)
	}
	return fresh
}

// Allow consumes a token for client and reports whether the request may
// proceed, along with the whole tokens left.
func (crl *ClientRateLimiter) Allow(client string) (bool, int) {
	b := crl.bucket(client)
	allowed := b.Allow()
	remaining := int(b.Tokens())
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// retryAfter is the wait until one token is available again.
func (crl *ClientRateLimiter) retryAfter() time.Duration {
	if crl.every <= 0 {
		return time.Minute
	}
	return time.Duration(float64(time.Second) / float64(crl.every))
}

// RateLimitMiddleware rejects requests over the per-client budget with 429.
// A non-positive RequestsPerMinute disables limiting.
func RateLimitMiddleware(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.config.RequestsPerMinute <= 0 {
			c.Next()
			return
		}

		client := c.ClientIP()
		allowed, remaining := limiter.Allow(client)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.config.BurstSize))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			retry := int(limiter.retryAfter().Seconds() + 0.5)
			if retry < 1 {
				retry = 1
			}
			limiter.logger.Warn("Rate limit exceeded",
				zap.String("client_ip", client),
				zap.String("path", c.FullPath()))

			c.Header("Retry-After", strconv.Itoa(retry))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "Rate limit exceeded, retry later",
			})
			return
		}

		c.Next()
	}
}
