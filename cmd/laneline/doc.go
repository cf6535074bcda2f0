// Package main hosts the laneline CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into report runs:
// best-times and ribbons build one PDF from one export, generate discovers
// the right exports in a directory and builds everything. Configuration
// resolution and structured logging setup live in the shared command context
// so subcommands stay declarative; the parsing, layout, and rendering work
// lives in the internal packages.
package main
