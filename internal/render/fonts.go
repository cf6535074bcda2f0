package render

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
)

const pageFormat = "Letter"

type font struct {
	family string
	style  string
	size   float64
}

func setFont(pdf *fpdf.Fpdf, f font) {
	pdf.SetFont(f.family, f.style, f.size)
}

// fitText shrinks the current font proportionally until text fits in width.
// Text is never truncated; a long name just prints smaller.
func fitText(pdf *fpdf.Fpdf, f font, text string, width float64) {
	actual := pdf.GetStringWidth(text)
	if actual > width && actual > 0 {
		pdf.SetFontSize(f.size * width / actual)
	}
}

// FormatSeconds renders an elapsed time as "M:SS.hh" from a minute up,
// otherwise "SS.hh".
func FormatSeconds(seconds float64) string {
	if seconds >= 60 {
		minutes := math.Floor(seconds / 60)
		return fmt.Sprintf("%d:%05.2f", int(minutes), seconds-minutes*60)
	}
	return fmt.Sprintf("%.2f", seconds)
}
