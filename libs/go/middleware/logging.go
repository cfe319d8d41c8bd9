package middleware

import (
	"bytes"
	"strings"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxLoggedBody = 4 << 10

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"Set-Cookie":    true,
	"X-Api-Key":     true,
}

// bodyLogWriter captures up to maxLoggedBody bytes of the response
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	if room := maxLoggedBody - w.body.Len(); room > 0 {
		if len(b) < room {
			room = len(b)
		}
		w.body.Write(b[:room])
	}
	return w.ResponseWriter.Write(b)
}

// redactHeaders flattens headers for logging and hides credentials.
func redactHeaders(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if len(values) == 0 {
			continue
		}
		if redactedHeaders[key] {
			out[key] = "[REDACTED]"
			continue
		}
		out[key] = values[0]
	}
	return out
}

// EnhancedLoggingMiddleware logs headers and JSON response bodies in
// development. Rendered pages are logged by size only.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment || logger.Log == nil {
			c.Next()
			return
		}

		startTime := time.Now()
		log := LogWithCorrelationID(c.Request.Context(), logger.ComponentMiddleware)

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", redactHeaders(c.Request.Header)),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("headers", redactHeaders(c.Writer.Header())),
			zap.Int("body_size", c.Writer.Size()),
		}
		if strings.HasPrefix(c.Writer.Header().Get("Content-Type"), "application/json") {
			fields = append(fields, zap.ByteString("body", blw.body.Bytes()))
		}
		log.Info("Detailed response", fields...)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
				zap.Any("meta", err.Meta),
			)
		}
	}
}

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		if logger.Log == nil {
			return
		}
		LogWithCorrelationID(c.Request.Context(), logger.ComponentMiddleware).Info("Request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		)
	}
}
