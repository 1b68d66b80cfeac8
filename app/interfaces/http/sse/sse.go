package sse

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"pizzaops.io/admin-dashboard/app/utils/logger"
)

func Prepare(reqCtx *gin.Context) {
	reqCtx.Header("Content-Type", "text/event-stream")
	reqCtx.Header("Cache-Control", "no-cache")
	reqCtx.Header("Connection", "keep-alive")
	reqCtx.Header("X-Accel-Buffering", "no")
	reqCtx.Writer.WriteHeaderNow()
	reqCtx.Writer.Flush()
}

// Emit writes one event and flushes it. It reports false once the client is gone.
func Emit(reqCtx *gin.Context, eventType string, data any) bool {
	eventJSON, err := json.Marshal(data)
	if err != nil {
		logger.GetLogger().Errorf("Failed to marshal stream event: %v", err)
		return true
	}
	if _, err := fmt.Fprintf(reqCtx.Writer, "event: %s\ndata: %s\n\n", eventType, eventJSON); err != nil {
		return false
	}
	reqCtx.Writer.Flush()
	return true
}
