package render

import (
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"laneline/internal/besttimes"
	"laneline/internal/layout"
)

// Best times page geometry, in millimeters on US Letter.
const (
	leftEdge   = 10.0
	rightEdge  = 205.0
	topEdge    = 30.0
	bottomEdge = 260.0

	headerPad    = 5.0
	headerHeight = 10.0
	footerPad    = 5.0
	footerHeight = 10.0

	columnCount = 3
	columnPad   = 2.0
	timeWidth   = 12.0

	ageGroupHeight = 8.0
	eventHeight    = 5.0
	swimmerHeight  = 3.5

	ageGroupIndent = columnPad
	eventIndent    = ageGroupIndent + 5
	swimmerIndent  = eventIndent + 5

	ageGroupPad = 3.0
	eventPad    = 2.0
	cellPad     = 1.0
	contPad     = 2.0

	contMarker = "(cont)"
)

var (
	titleFont    = font{"Times", "B", 16}
	footerFont   = font{"Times", "", 12}
	ageGroupFont = font{"Times", "B", 12}
	eventFont    = font{"Times", "B", 10}
	contFont     = font{"Times", "I", 12}
	swimmerFont  = font{"Times", "", 9}
)

// BestTimes writes the outline as a three column report to dst. The title
// prints centered atop every page.
func BestTimes(outline []besttimes.GroupSection, title, dst string) error {
	pdf := fpdf.New("P", "mm", pageFormat, "")
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetHeaderFunc(func() {
		setFont(pdf, titleFont)
		pdf.SetY(headerPad + headerHeight)
		pdf.CellFormat(0, headerHeight, title, "", 0, "C", false, 0, "")
	})
	generated := time.Now().Format("Monday January 2, 2006 at 3:04 PM")
	pdf.SetFooterFunc(func() {
		setFont(pdf, footerFont)
		pdf.SetY(-(footerPad + footerHeight))
		pdf.CellFormat(0, footerHeight, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
		pdf.SetY(-(footerPad + footerHeight))
		pdf.CellFormat(0, footerHeight, "Generated: "+generated, "", 0, "L", false, 0, "")
	})

	colWidth := math.Floor((rightEdge - leftEdge) / columnCount)
	flow := &layout.Flow{
		Columns:     columnCount,
		ColumnWidth: colWidth,
		Left:        leftEdge,
		Top:         topEdge,
		Bottom:      bottomEdge,
	}

	startPage := func() {
		pdf.AddPage()
		for i := 1; i < columnCount; i++ {
			x := leftEdge + float64(i)*colWidth
			pdf.Line(x, topEdge, x, bottomEdge)
		}
		flow.StartPage()
	}

	startPage()

	for _, group := range outline {
		// The group-level break check approximates the group's needs with its
		// first event only; a later oversized event still breaks mid-group.
		if !flow.Fits(groupLeadHeight(group)) {
			if flow.NextColumn() {
				startPage()
			}
		}

		placeGroupHeader(pdf, flow, colWidth, string(group.Group), false)

		for _, event := range group.Events {
			if !flow.Fits(eventBlockHeight(event)) {
				if flow.NextColumn() {
					startPage()
					placeGroupHeader(pdf, flow, colWidth, string(group.Group), true)
				}
			}

			setFont(pdf, eventFont)
			pdf.SetXY(flow.X()+eventIndent, flow.Y())
			pdf.Cell(colWidth-eventIndent, eventHeight, event.Label)
			flow.Advance(eventHeight)

			nameWidth := colWidth - (swimmerIndent + timeWidth + cellPad + columnPad)
			for _, result := range event.Results {
				setFont(pdf, swimmerFont)
				fitText(pdf, swimmerFont, result.Swimmer, nameWidth)
				pdf.SetXY(flow.X()+swimmerIndent, flow.Y())
				pdf.Cell(nameWidth, swimmerHeight, result.Swimmer)

				setFont(pdf, swimmerFont)
				pdf.SetXY(flow.X()+colWidth-timeWidth-columnPad, flow.Y())
				pdf.CellFormat(timeWidth, swimmerHeight, FormatSeconds(result.Seconds), "", 0, "R", false, 0, "")
				flow.Advance(swimmerHeight)
			}
			flow.Advance(eventPad)
		}
		flow.Advance(ageGroupPad)
	}

	if err := pdf.OutputFileAndClose(dst); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

// placeGroupHeader draws the age group heading at the cursor. On column or
// page breaks mid-group the heading repeats with an italic continuation
// marker abutting the measured heading width, shrunk to fit if the column is
// nearly full of heading already.
func placeGroupHeader(pdf *fpdf.Fpdf, flow *layout.Flow, colWidth float64, label string, continuation bool) {
	setFont(pdf, ageGroupFont)
	pdf.SetXY(flow.X()+ageGroupIndent, flow.Y())
	pdf.Cell(colWidth-ageGroupIndent, ageGroupHeight, label)

	if continuation {
		dx := pdf.GetStringWidth(label) + contPad
		avail := colWidth - ageGroupIndent - dx
		setFont(pdf, contFont)
		fitText(pdf, contFont, contMarker, avail)
		pdf.SetXY(flow.X()+ageGroupIndent+dx, flow.Y())
		pdf.Cell(avail, ageGroupHeight, contMarker)
	}

	flow.Advance(ageGroupHeight)
}

// eventBlockHeight is the vertical extent of an event header plus all of its
// rows. Blocks place as a unit and never split across columns.
func eventBlockHeight(event besttimes.EventSection) float64 {
	return eventHeight + eventPad + float64(len(event.Results))*swimmerHeight
}

// groupLeadHeight estimates the space an age group needs using only its
// first event. This is deliberately not a full look-ahead over the group.
func groupLeadHeight(group besttimes.GroupSection) float64 {
	return ageGroupHeight + eventBlockHeight(group.Events[0])
}
