package layout

// Flow tracks the cursor for a page of fixed-width columns. The zero value is
// not usable; populate the geometry fields and call StartPage before placing
// anything.
//
// Placement protocol: check Fits with the full height of the next block; if
// it does not fit, call NextColumn, and when that reports the page exhausted,
// have the drawing layer start a new page and call StartPage. Then draw at
// (X, Y) and Advance by what was drawn. Blocks are never split: a block
// taller than a whole column simply overflows past the bottom edge.
type Flow struct {
	Columns     int
	ColumnWidth float64
	Left        float64
	Top         float64
	Bottom      float64

	page   int
	column int
	y      float64
}

// StartPage begins a fresh page and homes the cursor to the first column.
func (f *Flow) StartPage() {
	f.page++
	f.column = 0
	f.y = f.Top
}

// Page returns the 1-based page number, 0 before the first StartPage.
func (f *Flow) Page() int { return f.page }

// Column returns the 0-based column index on the current page.
func (f *Flow) Column() int { return f.column }

// X returns the left edge of the current column.
func (f *Flow) X() float64 { return f.Left + float64(f.column)*f.ColumnWidth }

// Y returns the current vertical offset.
func (f *Flow) Y() float64 { return f.y }

// Remaining returns the vertical budget left in the current column.
func (f *Flow) Remaining() float64 { return f.Bottom - f.y }

// Fits reports whether a block of the given height fits in the remaining
// budget.
func (f *Flow) Fits(height float64) bool {
	return f.y+height <= f.Bottom
}

// Advance consumes vertical budget in the current column.
func (f *Flow) Advance(height float64) {
	f.y += height
}

// NextColumn moves the cursor to the top of the next column. It reports
// whether the page's columns were exhausted, in which case the caller must
// start a new page before placing anything.
func (f *Flow) NextColumn() bool {
	f.column++
	f.y = f.Top
	return f.column >= f.Columns
}
