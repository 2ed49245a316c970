package middleware

import (
	"net/http"
	"sync"
	"time"

	"shopstock/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// slidingEntry tracks request counts per IP within a window.
type slidingEntry struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

var (
	loginMap   = make(map[string]*slidingEntry)
	loginMapMu sync.Mutex

	apiMap   = make(map[string]*slidingEntry)
	apiMapMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return limitBy(&loginMapMu, loginMap, 20, time.Minute,
		"too many login attempts, try again in a minute")
}

// RateLimiter is the general sliding-window limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return limitBy(&apiMapMu, apiMap, limit, window,
		"too many requests, try again shortly")
}

func limitBy(mapMu *sync.Mutex, entries map[string]*slidingEntry, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		mapMu.Lock()
		entry, exists := entries[ip]
		if !exists {
			entry = &slidingEntry{}
			entries[ip] = entry
		}
		mapMu.Unlock()

		entry.mu.Lock()
		defer entry.mu.Unlock()

		now := time.Now()
		if now.After(entry.windowEnd) {
			entry.count = 0
			entry.windowEnd = now.Add(window)
		}

		entry.count++
		if entry.count > limit {
			c.Header("Retry-After", entry.windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate forever.
const purgeInterval = 5 * time.Minute

func init() {
	go purgeExpiredEntries()
}

func purgeExpiredEntries() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0
		for _, m := range []struct {
			mu      *sync.Mutex
			entries map[string]*slidingEntry
		}{{&loginMapMu, loginMap}, {&apiMapMu, apiMap}} {
			m.mu.Lock()
			for ip, entry := range m.entries {
				entry.mu.Lock()
				if now.After(entry.windowEnd) {
					delete(m.entries, ip)
					purged++
				}
				entry.mu.Unlock()
			}
			m.mu.Unlock()
		}
		if purged > 0 {
			log.Debug().Int("purged", purged).Msg("rate limiter maps purged")
		}
	}
}
