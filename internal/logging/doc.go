// Package logging provides structured logging for the onboarding CLI.
//
// This package wraps a package-level zap logger. Logging is silent unless a
// level is requested with --log-level or the ONBOARD_LOG_LEVEL environment
// variable, so operator prompts and results on stdout are never interleaved
// with log output. Enabled logs go to stderr.
//
// # Log Levels
//
//   - Debug: every FusionAuth API call (method, path, status, duration)
//   - Info: onboarding flow steps
//   - Warn: failed API calls and transport errors
//   - Error: command failures
//
// # Usage
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogStep("user", "groups_fetched", zap.Int("count", len(groups)))
//
// API keys must never be logged in clear text; use MaskSecret.
package logging
