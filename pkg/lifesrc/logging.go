package lifesrc

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level structured logger. It defaults to
// zerolog's nop logger so the engine is silent unless a caller opts in,
// matching the level-gating idiom smilemakc-mbflow uses around
// github.com/rs/zerolog/log.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger installs l as the package-level logger used for Debug-level
// decision/conflict/backjump tracing. Pass zerolog.Nop() to silence it
// again.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// NewDefaultLogger returns a human-readable console logger writing to
// stderr at the given level, for ad hoc debugging sessions.
func NewDefaultLogger(level zerolog.Level) zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
