package logger

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// Slog returns a log/slog logger writing through l, for the grid and its
// backends, which log with slog.
func (l *Logger) Slog() *slog.Logger {
	if l == nil {
		return slog.New(slogHandler{base: zerolog.Nop()})
	}
	return slog.New(slogHandler{base: l.base})
}

type slogHandler struct {
	base   zerolog.Logger
	prefix string
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

func (h slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.base.GetLevel() <= zerologLevel(level)
}

func (h slogHandler) Handle(_ context.Context, rec slog.Record) error {
	event := h.base.WithLevel(zerologLevel(rec.Level))
	rec.Attrs(func(a slog.Attr) bool {
		addAttr(event, h.prefix, a)
		return true
	})
	event.Msg(rec.Message)
	return nil
}

func (h slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	ctx := h.base.With()
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		ctx = ctx.Interface(h.prefix+a.Key, a.Value.Any())
	}
	return slogHandler{base: ctx.Logger(), prefix: h.prefix}
}

func (h slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return slogHandler{base: h.base, prefix: h.prefix + name + "."}
}

func addAttr(event *zerolog.Event, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := prefix + a.Key
	switch a.Value.Kind() {
	case slog.KindGroup:
		if a.Key != "" {
			prefix = key + "."
		}
		for _, ga := range a.Value.Group() {
			addAttr(event, prefix, ga)
		}
	case slog.KindString:
		event.Str(key, a.Value.String())
	case slog.KindInt64:
		event.Int64(key, a.Value.Int64())
	case slog.KindUint64:
		event.Uint64(key, a.Value.Uint64())
	case slog.KindFloat64:
		event.Float64(key, a.Value.Float64())
	case slog.KindBool:
		event.Bool(key, a.Value.Bool())
	case slog.KindDuration:
		event.Dur(key, a.Value.Duration())
	case slog.KindTime:
		event.Time(key, a.Value.Time())
	default:
		if err, ok := a.Value.Any().(error); ok {
			event.AnErr(key, err)
			return
		}
		event.Interface(key, a.Value.Any())
	}
}
