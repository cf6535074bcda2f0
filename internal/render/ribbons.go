package render

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"laneline/internal/layout"
	"laneline/internal/ribbons"
)

// Label internals, in millimeters. Each label carries four text lines:
//
//	Swimmer Name (age)
//	Event                      Date
//	Meet Name
//	New Best Time        -Delta
const (
	labelTopMargin    = 0.125 * layout.MMPerInch
	labelBottomMargin = 0.125 * layout.MMPerInch
	labelLeftMargin   = 0.25 * layout.MMPerInch
	labelRightMargin  = 0.25 * layout.MMPerInch

	labelDateWidth  = 0.5 * layout.MMPerInch
	labelDeltaWidth = 0.5 * layout.MMPerInch
	labelPad        = 1.0

	labelLines = 4
)

var (
	labelNameFont  = font{"Times", "B", 10}
	labelEventFont = font{"Times", "", 10}
	labelMeetFont  = font{"Times", "", 10}
	labelTimeFont  = font{"Times", "B", 10}
)

// Ribbons writes one adhesive label per improvement to dst. Labels place in
// sequence on the fixed grid; every label in the slice must reference a meet
// present in the directory.
func Ribbons(labels []ribbons.Label, meets ribbons.Directory, dst string) error {
	pdf := fpdf.New("P", "mm", pageFormat, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	grid := layout.LabelGrid()
	lineHeight := (grid.CellHeight - labelTopMargin - labelBottomMargin) / labelLines
	lineWidth := grid.CellWidth - labelLeftMargin - labelRightMargin

	pages := 1
	for i, label := range labels {
		info, err := meets.Lookup(label.Meet)
		if err != nil {
			return err
		}

		page, cellX, cellY := grid.Cell(i)
		for pages <= page {
			pdf.AddPage()
			pages++
		}

		x := cellX + labelLeftMargin
		y := cellY + labelTopMargin

		setFont(pdf, labelNameFont)
		pdf.SetXY(x, y)
		pdf.Cell(lineWidth, lineHeight, label.Swimmer)
		y += lineHeight

		event := fmt.Sprintf("%sM %s", label.Distance, ribbons.StrokeName(label.Stroke))
		setFont(pdf, labelEventFont)
		pdf.SetXY(x, y)
		pdf.Cell(lineWidth-labelDateWidth-labelPad, lineHeight, event)
		pdf.SetXY(x+lineWidth-labelDateWidth, y)
		pdf.CellFormat(labelDateWidth, lineHeight, info.Date, "", 0, "R", false, 0, "")
		y += lineHeight

		setFont(pdf, labelMeetFont)
		fitText(pdf, labelMeetFont, info.Name, lineWidth)
		pdf.SetXY(x, y)
		pdf.Cell(lineWidth, lineHeight, info.Name)
		y += lineHeight

		setFont(pdf, labelTimeFont)
		pdf.SetXY(x, y)
		pdf.Cell(lineWidth-labelDeltaWidth-labelPad, lineHeight, FormatSeconds(label.NewTime))
		pdf.SetXY(x+lineWidth-labelDeltaWidth, y)
		delta := fmt.Sprintf("-%sS", FormatSeconds(label.Drop))
		pdf.CellFormat(labelDeltaWidth, lineHeight, delta, "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(dst); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
