// Package layout resolves CSS box and position specifications against a page
// in points, translating the stylesheet's top-left origin into the bottom-left
// origin the PDF writer uses. Negative coordinates and non-positive dimensions
// are far-edge offsets: they are measured back from the right/bottom edge of
// the page.
package layout

import (
	"fmt"
	"strings"

	"htmlpdf/css"
)

// PageSize is the page extent in points.
type PageSize struct {
	W, H float64
}

// Point is a bottom-left-origin page coordinate.
type Point struct {
	X, Y float64
}

// Rect is a bottom-left-origin rectangle on the page.
type Rect struct {
	X, Y, W, H float64
}

// Coordinates flips a top-left-origin point into the page's bottom-left
// coordinate system. Negative x/y are offsets from the right/bottom edge.
func Coordinates(x, y float64, page PageSize) Point {
	if x < 0 {
		x = page.W + x
	}
	if y < 0 {
		y = page.H + y
	}
	return Point{X: x, Y: page.H - y}
}

// CoordinatesRect flips a top-left-origin rectangle into the page's
// bottom-left coordinate system. Negative x/y are offsets from the right and
// bottom edges. Non-positive w/h are reinterpreted as the distance to the far
// edge minus that amount (w = pageW - x + w). The formula is kept exactly as
// the stylesheet engine expects it, sign conventions included.
func CoordinatesRect(x, y, w, h float64, page PageSize) Rect {
	if x < 0 {
		x = page.W + x
	}
	if y < 0 {
		y = page.H + y
	}
	if w <= 0 {
		w = page.W - x + w
	}
	if h <= 0 {
		h = page.H - y + h
	}
	return Rect{X: x, Y: page.H - y - h, W: w, H: h}
}

// Box parses a 4-token "<x> <y> <width> <height>" specification, resolving
// each token as a CSS size, and maps it onto the page. Negative width/height
// are interpreted as offsets from the right and lower border.
func Box(cv *css.Converter, text string, page PageSize) (Rect, error) {
	fields := strings.Fields(text)
	if len(fields) != 4 {
		return Rect{}, fmt.Errorf("box %q must have exactly 4 values", text)
	}
	v := resolveSigned(cv, fields)
	return CoordinatesRect(v[0], v[1], v[2], v[3], page), nil
}

// Position parses a 2-token "<x> <y>" specification and maps it onto the page.
func Position(cv *css.Converter, text string, page PageSize) (Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("position %q must have exactly 2 values", text)
	}
	v := resolveSigned(cv, fields)
	return Coordinates(v[0], v[1], page), nil
}

// resolveSigned converts size tokens keeping negative bare numbers intact,
// since box and position specs use them as far-edge offsets.
func resolveSigned(cv *css.Converter, fields []string) []float64 {
	out := make([]float64, len(fields))
	for i, f := range fields {
		out[i] = cv.SizeWith(f, css.SizeOpts{Signed: true})
	}
	return out
}

// frameBoxKey is the direct 4-value override entry in a frame configuration.
const frameBoxKey = "-pdf-frame-box"

// FrameDimensions resolves a layout region's left/top/width/height from a
// style configuration mapping. Any combination of top/bottom/height and
// left/right/width anchors the frame; the missing opposite offset is derived
// from the page dimension. Margins are always added on top. A direct
// 4-value frame box entry bypasses all derivation.
func FrameDimensions(cv *css.Converter, data map[string]any, page PageSize) (left, top, width, height float64) {
	if box, ok := frameBox(data[frameBoxKey]); ok {
		return cv.Size(box[0]), cv.Size(box[1]), cv.Size(box[2]), cv.Size(box[3])
	}

	top = cv.Size(data["top"])
	left = cv.Size(data["left"])
	bottom := cv.Size(data["bottom"])
	right := cv.Size(data["right"])

	if h, ok := data["height"]; ok {
		height = cv.Size(h)
		if t, ok := data["top"]; ok {
			top = cv.Size(t)
			bottom = page.H - (top + height)
		} else if b, ok := data["bottom"]; ok {
			bottom = cv.Size(b)
			top = page.H - (bottom + height)
		}
	}
	if w, ok := data["width"]; ok {
		width = cv.Size(w)
		if l, ok := data["left"]; ok {
			left = cv.Size(l)
			right = page.W - (left + width)
		} else if r, ok := data["right"]; ok {
			right = cv.Size(r)
			left = page.W - (right + width)
		}
	}

	top += cv.Size(data["margin-top"])
	left += cv.Size(data["margin-left"])
	bottom += cv.Size(data["margin-bottom"])
	right += cv.Size(data["margin-right"])

	width = page.W - (left + right)
	height = page.H - (top + bottom)
	return left, top, width, height
}

// frameBox extracts a 4-token frame override from either a token slice or a
// whitespace separated string. Anything else, including a wrong token count,
// disables the override.
func frameBox(v any) ([]string, bool) {
	switch b := v.(type) {
	case []string:
		if len(b) == 4 {
			return b, true
		}
	case string:
		if fields := strings.Fields(b); len(fields) == 4 {
			return fields, true
		}
	}
	return nil, false
}
