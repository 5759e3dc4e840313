package css

import "strings"

// Alignment is a horizontal text alignment for the paragraph engine.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

var alignments = map[string]Alignment{
	"left":    AlignLeft,
	"center":  AlignCenter,
	"middle":  AlignCenter,
	"right":   AlignRight,
	"justify": AlignJustify,
}

// ParseAlignment maps a CSS text-align value to an Alignment, falling back
// to def for anything unrecognized.
func ParseAlignment(value string, def Alignment) Alignment {
	if a, ok := alignments[strings.ToLower(strings.TrimSpace(value))]; ok {
		return a
	}
	return def
}
