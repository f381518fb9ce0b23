package textpath

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs another one. Its
// handler reports every level disabled, so log calls cost a level check.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of textpath, svg and scene to l. A nil
// l silences them again.
//
// Overlays themselves are not safe for concurrent use, but SetLogger is:
// it may run while another goroutine lays out labels, which then log to
// either the old or the new logger.
//
// Levels:
//   - [slog.LevelDebug]: per-label layout, redraws, svg path add/remove
//   - [slog.LevelInfo]: attach and detach, scene builds
//   - [slog.LevelWarn]: labels stored but not drawn (no vector text, no container)
//
// Example:
//
//	textpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
