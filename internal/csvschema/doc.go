// Package csvschema recognizes and validates the two Swimtopia CSV export
// formats laneline consumes.
//
// A best-times export carries a fixed ten column header. An athlete report
// card carries eight lead columns, one six column block per meet (prefixed
// "Meet{i}-"), and five aggregate tail columns; the number of meets is
// inferred from the header width. Classify gives a total answer for either
// format so discovery never branches on errors, while the Validate functions
// name the exact offending column for direct invocations.
package csvschema
