package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		// Every list mutation triggers a refetch, so a slow read path hurts
		// twice. Flag anything over the budget.
		if latency > 200*time.Millisecond {
			log.Printf("[PERF] SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
