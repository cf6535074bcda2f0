// Package ribbons parses athlete report-card exports and derives the
// personal-best improvement labels ("black ribbons") for a single meet.
//
// A report card carries one row per swimmer and event, with one result block
// per meet of the season. The package builds a meet directory from the first
// row naming each meet, then compares a target meet's time against the
// swimmer's best earlier time: strictly faster earns a label, anything else
// does not. Meet index 0 is the season's time trial and is reserved; it never
// gets ribbons of its own but does count as a baseline.
package ribbons
