// Package log provides logging with automatic masking of credentials,
// built on top of the standard slog package.
//
// The assistant holds exactly one secret worth protecting: the OpenAI API
// key. The RedactHandler masks it, and anything that looks like it, before
// a record reaches the underlying handler. This keeps verbose fetch logging
// safe to paste into a bug report.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Info("client ready",
//	    "api_key", "sk-proj-abc123",  // masked in output
//	    "model", "gpt-4o-mini",
//	)
//	slog.SetDefault(logger)
package log
