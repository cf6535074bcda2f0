// Package layout holds the page geometry used by the PDF renderers: a
// cursor-and-budget state machine for multi-column flowing text, and a fixed
// grid for adhesive label sheets.
//
// Both are pure arithmetic over page coordinates. Remaining vertical space is
// an explicit numeric budget the caller checks before every placement; it is
// never inferred from side effects of the drawing library. The geometry
// constants are part of the printed output's contract and must not drift.
package layout
