package sharedchan

import (
	"io"

	"golang.org/x/exp/slog"
)

// logger is the package-wide logger. It discards everything until a
// handler is installed with SetLogHandler.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogHandler enables debug logging for the package using the given
// slog handler. It must be called before any channel is created; it is
// not safe to call concurrently with channel operations.
func SetLogHandler(h slog.Handler) {
	logger = slog.New(h)
}
