package css

import (
	"fmt"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a resolved RGBA color with components in [0, 1].
type Color struct {
	R, G, B float64
	A       float64
}

func rgb(r, g, b float64) Color { return Color{R: r, G: g, B: b, A: 1} }

func rgb255(r, g, b int) Color {
	return Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0, A: 1}
}

// Hex returns the #rrggbb form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.R*255.0+0.5), int(c.G*255.0+0.5), int(c.B*255.0+0.5))
}

// rgbPattern extracts the three numeric components from rgb() function text.
// Deliberately loose - upstream tokenizers wrap values in decoration like
// "<css function: rgb(153, 51, 153)>".
var rgbPattern = regexp.MustCompile(`rgb\(\s*([0-9]+)[^0-9]+([0-9]+)[^0-9]+([0-9]+)\s*\)`)

type colorKey struct {
	text string
	def  Color
}

// ParseColor resolves a color value using the shared converter.
func ParseColor(value any, def Color) Color { return std.ParseColor(value, def) }

// ParseColor resolves a value to a color. Already resolved colors pass
// through, "transparent" and "none" resolve to def, names are looked up in
// the fixed table, short hex is expanded, rgb() function text is converted to
// hex, and anything else goes through generic hex parsing. Unparseable input
// resolves to def - never an error.
func (c *Converter) ParseColor(value any, def Color) Color {
	switch v := value.(type) {
	case Color:
		return v
	case string:
		key := colorKey{text: v, def: def}
		return c.colors.Do(key, func() Color {
			return parseColorText(v, def)
		})
	default:
		return parseColorText(fmt.Sprint(value), def)
	}
}

// ParseColorOK resolves a value to a color, reporting whether it resolved to
// anything other than the zero default. Callers that must distinguish "black"
// from "unparseable" use this instead of ParseColor.
func (c *Converter) ParseColorOK(value any) (Color, bool) {
	sentinel := Color{R: -1}
	got := c.ParseColor(value, sentinel)
	if got == sentinel {
		return Color{}, false
	}
	return got, true
}

func parseColorText(raw string, def Color) Color {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "transparent" || s == "none" {
		return def
	}
	if c, ok := colorByName[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") && len(s) == 4 {
		s = "#" + strings.Repeat(string(s[1]), 2) + strings.Repeat(string(s[2]), 2) + strings.Repeat(string(s[3]), 2)
	} else if m := rgbPattern.FindStringSubmatch(s); m != nil {
		s = fmt.Sprintf("#%02x%02x%02x", atoiClamp(m[1]), atoiClamp(m[2]), atoiClamp(m[3]))
	}
	if parsed, err := colorful.Hex(s); err == nil {
		return Color{R: parsed.R, G: parsed.G, B: parsed.B, A: 1}
	}
	return def
}

// atoiClamp parses a decimal channel value clamped to [0, 255].
func atoiClamp(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
		if n > 255 {
			return 255
		}
	}
	return n
}

// BorderStyle passes a border style through unless it is absent or one of
// the no-border keywords.
func BorderStyle(value string, def string) string {
	if value != "" {
		switch strings.ToLower(value) {
		case "none", "hidden":
		default:
			return value
		}
	}
	return def
}
