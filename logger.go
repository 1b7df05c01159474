package gendy

import (
	"context"
	"log/slog"
)

// nopHandler discards every record.  Enabled reports false, so disabled
// logging costs a single call.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// Log levels used by an Engine:
//   - [slog.LevelDebug]: configuration applied at a cycle boundary
//   - [slog.LevelInfo]: engine created, sample rate set
//   - [slog.LevelWarn]: a setter corrected an invalid value
//
// The render path itself never logs unless a cycle boundary applies new
// parameters.
func (e *Engine) debugEnabled() bool {
	return e.log.Enabled(context.Background(), slog.LevelDebug)
}
