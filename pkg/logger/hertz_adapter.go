package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// HertzSlogAdapter routes Hertz framework logs through slog so everything
// the process emits shares one format and destination.
type HertzSlogAdapter struct {
	logger *slog.Logger
}

// NewHertzSlogAdapter wraps logger for use with hlog.SetLogger.
func NewHertzSlogAdapter(logger *slog.Logger) *HertzSlogAdapter {
	return &HertzSlogAdapter{logger: logger}
}

func (h *HertzSlogAdapter) log(level slog.Level, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprint(v...))
}

func (h *HertzSlogAdapter) logf(level slog.Level, format string, v ...interface{}) {
	h.logger.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) ctxLogf(ctx context.Context, level slog.Level, format string, v ...interface{}) {
	h.logger.Log(ctx, level, fmt.Sprintf(format, v...))
}

func (h *HertzSlogAdapter) Trace(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Debug(v ...interface{})  { h.log(slog.LevelDebug, v...) }
func (h *HertzSlogAdapter) Info(v ...interface{})   { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Notice(v ...interface{}) { h.log(slog.LevelInfo, v...) }
func (h *HertzSlogAdapter) Warn(v ...interface{})   { h.log(slog.LevelWarn, v...) }
func (h *HertzSlogAdapter) Error(v ...interface{})  { h.log(slog.LevelError, v...) }
func (h *HertzSlogAdapter) Fatal(v ...interface{})  { h.log(slog.LevelError, v...) }

func (h *HertzSlogAdapter) Tracef(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzSlogAdapter) Debugf(format string, v ...interface{}) {
	h.logf(slog.LevelDebug, format, v...)
}
func (h *HertzSlogAdapter) Infof(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzSlogAdapter) Noticef(format string, v ...interface{}) {
	h.logf(slog.LevelInfo, format, v...)
}
func (h *HertzSlogAdapter) Warnf(format string, v ...interface{}) {
	h.logf(slog.LevelWarn, format, v...)
}
func (h *HertzSlogAdapter) Errorf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}
func (h *HertzSlogAdapter) Fatalf(format string, v ...interface{}) {
	h.logf(slog.LevelError, format, v...)
}

func (h *HertzSlogAdapter) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelDebug, format, v...)
}
func (h *HertzSlogAdapter) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelDebug, format, v...)
}
func (h *HertzSlogAdapter) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelInfo, format, v...)
}
func (h *HertzSlogAdapter) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelInfo, format, v...)
}
func (h *HertzSlogAdapter) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelWarn, format, v...)
}
func (h *HertzSlogAdapter) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelError, format, v...)
}
func (h *HertzSlogAdapter) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	h.ctxLogf(ctx, slog.LevelError, format, v...)
}

// SetLevel is a no-op; the slog level is fixed at Setup time.
func (h *HertzSlogAdapter) SetLevel(level hlog.Level) {}

// SetOutput is a no-op; the slog writer is fixed at Setup time.
func (h *HertzSlogAdapter) SetOutput(writer io.Writer) {}
