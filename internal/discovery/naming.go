package discovery

import (
	"fmt"
	"strings"

	"laneline/internal/textutil"
)

// OutputName derives a ribbons file name from a meet name. League meet names
// follow a "{date} {division} {week} {home team} {rest...}" token convention:
// the first token becomes the abbreviation and tokens past the third the
// descriptive suffix. The convention is assumed, not validated; tokens are
// sanitized for filesystem use.
func OutputName(meetName string) string {
	tokens := strings.Fields(strings.ToLower(meetName))
	if len(tokens) == 0 {
		return "black_ribbons.pdf"
	}

	abbrev := textutil.SanitizeToken(tokens[0])
	if len(tokens) <= 3 {
		return fmt.Sprintf("black_ribbons_%s.pdf", abbrev)
	}

	parts := make([]string, 0, len(tokens)-3)
	for _, tok := range tokens[3:] {
		parts = append(parts, textutil.SanitizeToken(tok))
	}
	return fmt.Sprintf("black_ribbons_%s_%s.pdf", abbrev, strings.Join(parts, "_"))
}
