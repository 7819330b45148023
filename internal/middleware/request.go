package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID keeps an incoming X-Request-ID or generates one, and echoes it on
// the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

func GetRequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// AccessLog writes one zerolog line per request.
func AccessLog() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			event := log.Info()
			if param.StatusCode >= 500 {
				event = log.Error()
			} else if param.StatusCode >= 400 {
				event = log.Warn()
			}
			requestID, _ := param.Keys[requestIDKey].(string)
			event.
				Str("request_id", requestID).
				Str("client_ip", param.ClientIP).
				Str("method", param.Method).
				Str("path", param.Path).
				Int("status_code", param.StatusCode).
				Dur("latency", param.Latency).
				Str("user_agent", param.Request.UserAgent()).
				Str("error_message", param.ErrorMessage).
				Msg("gin_request")
			return ""
		},
		SkipPaths: []string{"/healthz"},
	})
}
