// Package besttimes parses best-times exports and arranges them into the
// ordered outline the report renderer consumes.
//
// The league runs ten fixed age groups, five strokes, and a standard event
// list per age group. Swimmers occasionally compete outside their group's
// standard list ("swim up"); those events are accepted with a warning rather
// than rejected. An unrecognized age group is a data error and aborts the
// whole parse.
package besttimes
