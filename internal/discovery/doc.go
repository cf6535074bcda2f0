// Package discovery classifies the CSV exports in a directory and selects
// which files the generate command should build reports from.
//
// Classification is total: a file that fails to read, parse, or match either
// schema is simply not a candidate. Among matches, the newest best-times
// export wins on modification time, and the report card exposing the highest
// meet index wins on coverage.
package discovery
