package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level, and failures at
// warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

func (h *LogHooks) OnRunStart(_ context.Context, id string, biscuits int) {
	h.logger.Debug("run started", "id", id, "biscuits", biscuits)
}

func (h *LogHooks) OnRunComplete(_ context.Context, id string, biscuits int, cost float64, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("run failed", "id", id, "biscuits", biscuits, "err", err)
		return
	}
	h.logger.Debug("run complete", "id", id, "biscuits", biscuits, "cost", cost, "duration", d)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, id, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "id", id, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "id", id, "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, key string)  { h.logger.Debug("cache hit", "key", key) }
func (h *LogHooks) OnCacheMiss(_ context.Context, key string) { h.logger.Debug("cache miss", "key", key) }
func (h *LogHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

var (
	_ RunHooks   = (*LogHooks)(nil)
	_ CacheHooks = (*LogHooks)(nil)
)
