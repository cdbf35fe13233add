package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
)

// AccessLog logs one structured line per request.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("duration", time.Since(start)),
			logging.String("request_id", c.GetString(ContextKeyRequestID)),
			logging.String("client_ip", c.ClientIP()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request handled", fields...)
	}
}
