package css

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"htmlpdf/memo"
)

// Conversion factors to points.
const (
	Inch = 72.0
	Cm   = Inch / 2.54 // 28.346456692913385
	Mm   = Cm / 10.0
	Pica = 12.0
	Px   = Inch / 96.0 // https://www.w3.org/TR/CSS21/syndata.html#length-units
)

// MinFontSize is the lower bound applied when resolving font-relative size
// keywords and bare multipliers.
const MinFontSize = 1.0

// relativeSizeTable maps relative font-size keywords to multipliers.
var relativeSizeTable = map[string]float64{
	"larger":  1.25,
	"smaller": 0.75,
	"+4":      2.0,
	"+3":      1.75,
	"+2":      1.5,
	"+1":      1.25,
	"-1":      0.75,
	"-2":      0.5,
	"-3":      0.25,
}

// absoluteSizeTable maps absolute font-size keywords (and the HTML font size
// digits 1-7) to multipliers of the base size.
var absoluteSizeTable = map[string]float64{
	"1":         0.5,
	"xx-small":  0.5,
	"x-small":   0.5,
	"2":         0.75,
	"small":     0.75,
	"3":         1.0,
	"medium":    1.0,
	"4":         1.25,
	"large":     1.25,
	"5":         1.5,
	"x-large":   1.5,
	"6":         1.75,
	"xx-large":  1.75,
	"7":         2.0,
	"xxx-large": 2.0,
}

// SizeOpts control how a textual size is resolved.
type SizeOpts struct {
	// Relative is the font-size-like base for em/ex/% and keyword tables.
	// Zero means no relative base is available.
	Relative float64
	// Base is the optional absolute base used instead of Relative when
	// resolving the size keyword tables.
	Base float64
	// Default is returned when the value cannot be parsed.
	Default float64
	// Signed keeps the sign of bare numeric values instead of flooring them
	// at zero. Box parsing relies on negative components as far-edge offsets.
	Signed bool
}

type sizeKey struct {
	text string
	opts SizeOpts
}

// Converter resolves CSS size and color values. It owns the memoization
// caches for both, so repeated conversions of the same value are free. A
// Converter is not safe for concurrent use - callers sharing one between
// goroutines must serialize access.
type Converter struct {
	log    *zap.Logger
	sizes  *memo.Cache[sizeKey, float64]
	colors *memo.Cache[colorKey, Color]
}

// NewConverter creates a converter logging size parse failures to log.
func NewConverter(log *zap.Logger) *Converter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{
		log:    log.Named("css"),
		sizes:  memo.New[sizeKey, float64](),
		colors: memo.New[colorKey, Color](),
	}
}

// std is the shared process-wide converter behind the package-level helpers.
// Like the caches it owns it is unsynchronized.
var std = NewConverter(nil)

// SetLogger routes size parse warnings from the package-level helpers to log.
func SetLogger(log *zap.Logger) {
	std.log = log.Named("css")
}

// Size converts a CSS size value to points with no relative base.
func Size(value any) float64 { return std.SizeWith(value, SizeOpts{}) }

// SizeWith converts a CSS size value to points using the shared converter.
func SizeWith(value any, opts SizeOpts) float64 { return std.SizeWith(value, opts) }

// Size converts a CSS size value to points with no relative base.
func (c *Converter) Size(value any) float64 {
	return c.SizeWith(value, SizeOpts{})
}

// SizeWith converts a size value to points.
//
//	c.Size("12pt")        == 12.0
//	c.Size("1cm")         == 28.346456692913385
//	c.SizeWith("50%", SizeOpts{Relative: 200}) == 100.0
//
// A nil value returns the relative base unchanged ("inherit"). Numeric values
// pass through. Token slices are joined before parsing and bypass the cache
// since a slice cannot key it. Unparseable text is logged and resolves to
// opts.Default - the caller never sees an error.
func (c *Converter) SizeWith(value any, opts SizeOpts) float64 {
	switch v := value.(type) {
	case nil:
		return opts.Relative
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case []string:
		// Unhashable in cache terms - compute directly.
		return c.sizeUncached(strings.Join(v, ""), opts)
	case string:
		key := sizeKey{text: v, opts: opts}
		return c.sizes.Do(key, func() float64 {
			return c.sizeUncached(v, opts)
		})
	default:
		c.log.Warn("Not a size value", zap.Any("value", value))
		return opts.Default
	}
}

// sizeUncached does the actual parsing. Absolute units are recognized first,
// then the zero literals, then - only when a relative base is available -
// font-relative units and keyword tables, and finally a bare float.
func (c *Converter) sizeUncached(raw string, opts SizeOpts) float64 {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), ",", ".")

	tok := tokenizeValue(s)
	value, unit := tok.Value, tok.Unit
	if !knownUnit(unit) {
		// The tokenizer splits "1.0 cm" and exponents like "1.5e2px" apart;
		// recover them by peeling a trailing unit off the whole string.
		if v, u, ok := splitUnitSuffix(s); ok {
			value, unit = v, u
		}
	}

	switch unit {
	case "cm":
		return value * Cm
	case "mm":
		return value * Mm
	case "in", "inch", "i":
		return value * Inch
	case "pt":
		return value
	case "pc":
		return value * Pica
	case "px":
		return value * Px
	}

	if s == "none" || s == "0" || s == "auto" {
		return 0.0
	}

	if opts.Relative != 0 {
		base := opts.Base
		if base == 0 {
			base = opts.Relative
		}
		switch unit {
		case "em":
			return value * opts.Relative
		case "ex":
			return value * (opts.Relative / 2.0)
		case "%":
			return opts.Relative * value / 100.0
		}
		if s == "normal" || s == "inherit" {
			return opts.Relative
		}
		if f, ok := relativeSizeTable[s]; ok {
			return max(MinFontSize, base*f)
		}
		if f, ok := absoluteSizeTable[s]; ok {
			return max(MinFontSize, base*f)
		}
		if unit == numberUnit {
			return max(MinFontSize, opts.Relative*value)
		}
		c.log.Warn("Not a size value", zap.String("value", raw), zap.Float64("relative", opts.Relative))
		return opts.Default
	}

	if unit == numberUnit {
		if opts.Signed {
			return value
		}
		return max(0, value)
	}

	c.log.Warn("Not a size value", zap.String("value", raw))
	return opts.Default
}

// knownUnit reports whether the tokenizer produced a unit the conversion
// switches understand.
func knownUnit(u string) bool {
	switch u {
	case "cm", "mm", "in", "inch", "i", "pt", "pc", "px", "em", "ex", "%", numberUnit:
		return true
	}
	return false
}

// unitSuffixes in match order - longer spellings first so "inch" is not
// eaten by "in" or "i".
var unitSuffixes = []string{"inch", "cm", "mm", "in", "pt", "pc", "px", "em", "ex", "%", "i"}

// splitUnitSuffix peels a trailing unit off a normalized size string and
// parses the remaining head as a float. Whitespace between number and unit
// and exponent notation both survive this path.
func splitUnitSuffix(s string) (float64, string, bool) {
	for _, u := range unitSuffixes {
		if !strings.HasSuffix(s, u) {
			continue
		}
		head := strings.TrimSpace(strings.TrimSuffix(s, u))
		if v, err := strconv.ParseFloat(head, 64); err == nil {
			return v, u, true
		}
	}
	return 0, "", false
}

// ParseBool interprets loose affirmative configuration values.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "1", "true":
		return true
	}
	return false
}
