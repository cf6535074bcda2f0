package layout

// MMPerInch converts the label vendor's inch measurements to the renderer's
// millimeter coordinate space.
const MMPerInch = 25.4

// Grid is a fixed sheet of identically sized cells. Cells fill a column top
// to bottom, then the next column, then a fresh page; placement is computed
// directly from the cell index, so no reflow or page-break logic applies.
type Grid struct {
	PageWidth  float64
	PageHeight float64
	MarginX    float64 // left and right sheet margins
	MarginY    float64 // top and bottom sheet margins
	CellWidth  float64
	CellHeight float64
	Columns    int
	Rows       int
}

// LabelGrid is the Avery 5160/8160 sheet the ribbons print on: US Letter,
// 3/16" side margins, 1/2" top and bottom margins, thirty 2 5/8" x 1" labels.
func LabelGrid() Grid {
	return Grid{
		PageWidth:  8.5 * MMPerInch,
		PageHeight: 11.0 * MMPerInch,
		MarginX:    0.1825 * MMPerInch,
		MarginY:    0.5 * MMPerInch,
		CellWidth:  2.625 * MMPerInch,
		CellHeight: 1.0 * MMPerInch,
		Columns:    3,
		Rows:       10,
	}
}

// PerPage returns the number of cells on one sheet.
func (g Grid) PerPage() int { return g.Columns * g.Rows }

// GapX returns the horizontal gap between cells: the width left over after
// margins and cells, divided evenly between the columns.
func (g Grid) GapX() float64 {
	excess := g.PageWidth - 2*g.MarginX - float64(g.Columns)*g.CellWidth
	return excess / float64(g.Columns-1)
}

// GapY returns the vertical gap between cells.
func (g Grid) GapY() float64 {
	excess := g.PageHeight - 2*g.MarginY - float64(g.Rows)*g.CellHeight
	return excess / float64(g.Rows-1)
}

// Cell returns the 0-based page and the top-left corner of cell i.
func (g Grid) Cell(i int) (page int, x, y float64) {
	page = i / g.PerPage()
	rem := i % g.PerPage()
	column := rem / g.Rows
	row := rem % g.Rows
	x = g.MarginX + float64(column)*(g.CellWidth+g.GapX())
	y = g.MarginY + float64(row)*(g.CellHeight+g.GapY())
	return page, x, y
}
