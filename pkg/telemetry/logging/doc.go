// Package logging provides structured logging built on log/slog with
// automatic bot token redaction.
//
// The logger's level is held in a slog.LevelVar so it can be adjusted
// at runtime when the configuration file changes. When redaction is
// enabled (the default), string and error log values are scrubbed of
// bot token shapes, and values under sensitive keys ("token",
// "secret", "authorization", ...) are replaced wholesale.
package logging
