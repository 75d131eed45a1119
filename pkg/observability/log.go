package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Errors are logged
// at warn level.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks for all three categories backed by logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("obs")}
}

// Install registers h for pipeline, cache and fetch events.
func (h *LogHooks) Install() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetFetchHooks(h)
}

func (h *LogHooks) OnStageStart(_ context.Context, stage string) {
	h.logger.Debug("stage start", "stage", stage)
}

func (h *LogHooks) OnStageComplete(_ context.Context, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("stage failed", "stage", stage, "duration", d, "err", err)
		return
	}
	h.logger.Debug("stage done", "stage", stage, "duration", d)
}

func (h *LogHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("cache hit", "kind", kind)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("cache miss", "kind", kind)
}

func (h *LogHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("cache set", "kind", kind, "bytes", size)
}

func (h *LogHooks) OnFetch(_ context.Context, url string, status int, size int64, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("fetch failed", "url", url, "status", status, "err", err)
		return
	}
	h.logger.Debug("fetched", "url", url, "status", status, "bytes", size, "duration", d)
}
