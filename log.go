package grid

import (
	"log/slog"
	"os"
)

// gridLogLevel controls the default logger. It is shared by every Grid that
// was not given its own logger through WithLogger.
// SetVerbose(true) sets it to LevelDebug.
var gridLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging of redraws and hit tests.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

// IsVerbose reports whether debug logging is enabled.
func IsVerbose() bool {
	return gridLogLevel.Level() <= slog.LevelDebug
}

var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))
