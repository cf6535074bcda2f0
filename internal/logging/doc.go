// Package logging builds the slog loggers laneline writes through: a compact
// console handler for interactive runs and a JSON handler with stable ts/
// level/msg keys for captured output.
package logging
