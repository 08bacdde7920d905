package layout

import "strings"

// Anchor names one of the six supported page-number positions.
type Anchor string

const (
	BottomLeft   Anchor = "bottom left"
	BottomRight  Anchor = "bottom right"
	TopLeft      Anchor = "top left"
	TopRight     Anchor = "top right"
	TopMiddle    Anchor = "top middle"
	BottomMiddle Anchor = "bottom middle"
)

// Fixed margins tuned for 12pt numeral text. Right- and top-anchored
// positions subtract from the page dimensions so the relative placement is
// the same on any page size.
const (
	leftX   = 10
	rightX  = 30
	bottomY = 10
	topY    = 20
	middleX = 10
)

// Position maps an anchor to a coordinate on a page of the given size.
// Coordinates use the PDF convention: origin at the bottom-left corner,
// units in points. An unrecognized anchor falls back to bottom-left.
func Position(a Anchor, pageWidth, pageHeight float64) (x, y float64) {
	switch a {
	case BottomLeft:
		return leftX, bottomY
	case BottomRight:
		return pageWidth - rightX, bottomY
	case TopLeft:
		return leftX, pageHeight - topY
	case TopRight:
		return pageWidth - rightX, pageHeight - topY
	case TopMiddle:
		return pageWidth/2 - middleX, pageHeight - topY
	case BottomMiddle:
		return pageWidth/2 - middleX, bottomY
	default:
		return leftX, bottomY
	}
}

// ParseAnchor normalizes a user-supplied anchor name: lowercased, with runs
// of whitespace collapsed. Unknown names are returned as-is; Position treats
// them as bottom-left.
func ParseAnchor(s string) Anchor {
	return Anchor(strings.Join(strings.Fields(strings.ToLower(s)), " "))
}

// Valid reports whether a names one of the six supported positions.
func (a Anchor) Valid() bool {
	switch a {
	case BottomLeft, BottomRight, TopLeft, TopRight, TopMiddle, BottomMiddle:
		return true
	}
	return false
}
