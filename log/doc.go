// Package log provides a small structured logging interface based on
// [log/slog].
//
// A [Logger] is an immutable value. Options are applied when it is created
// with [Make] or derived with [Logger.Wrap], so a Logger can be shared
// between goroutines without locking.
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Info("parsed", slog.Int("keys", 12))
//
// The zero Logger discards all records, which makes it a convenient default
// for libraries that accept an optional logger.
//
// # Levels
//
// In addition to the four [log/slog] levels, [LevelTrace] sits below
// [LevelDebug] for high-volume diagnostics.
//
// # Default logger
//
// Package-level functions such as [Info] and [ErrorContext] write to a
// process-wide default logger that [Config] reconfigures. Context-unaware
// variants use [DefaultContextProvider].
package log
