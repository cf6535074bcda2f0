// Package render writes the printable PDF documents: the multi-column best
// times report and the black ribbon label sheet.
//
// Geometry constants here mirror the league's established print layout and
// are part of the output contract; changing them changes what parents pick up
// off the printer tray.
package render
