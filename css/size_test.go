package css_test

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"htmlpdf/css"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSizeAbsoluteUnits(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"1in", 72.0},
		{"1inch", 72.0},
		{"1i", 72.0},
		{"1cm", 28.346456692913385},
		{"10mm", 28.346456692913385},
		{"12pt", 12.0},
		{"1pc", 12.0},
		{"96px", 72.0},
		{"1.5cm", 1.5 * 28.346456692913385},
		{"1,5cm", 1.5 * 28.346456692913385}, // decimal comma
		{" 12pt ", 12.0},
		{"12PT", 12.0},
		{"-10pt", -10.0}, // sign survives unit conversion
		// Whitespace between number and unit.
		{"1.0 cm", 28.346456692913385},
		{"1,0 cm", 28.346456692913385},
		{"-1.5 cm", -1.5 * 28.346456692913385},
		// Exponent notation.
		{"1.5e2px", 112.5},
		{"2e1pt", 20.0},
	}
	for _, tt := range tests {
		if got := css.Size(tt.value); !almostEqual(got, tt.want) {
			t.Errorf("Size(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSizeLiterals(t *testing.T) {
	for _, value := range []string{"none", "0", "auto"} {
		if got := css.Size(value); got != 0.0 {
			t.Errorf("Size(%q) = %v, want 0", value, got)
		}
	}
}

func TestSizeNilInherits(t *testing.T) {
	for _, relative := range []float64{0, 10, 12.5, 200} {
		got := css.SizeWith(nil, css.SizeOpts{Relative: relative})
		if got != relative {
			t.Errorf("SizeWith(nil, relative=%v) = %v, want %v", relative, got, relative)
		}
	}
}

func TestSizeNumericPassThrough(t *testing.T) {
	if got := css.Size(12.5); got != 12.5 {
		t.Errorf("Size(12.5) = %v", got)
	}
	if got := css.Size(7); got != 7.0 {
		t.Errorf("Size(7) = %v", got)
	}
}

func TestSizeRelative(t *testing.T) {
	tests := []struct {
		value    string
		relative float64
		base     float64
		want     float64
	}{
		{"1em", 10, 0, 10},
		{"2em", 10, 0, 20},
		{"2 em", 10, 0, 20},
		{"1ex", 10, 0, 5},
		{"50%", 200, 0, 100},
		{"normal", 10, 0, 10},
		{"inherit", 10, 0, 10},
		{"larger", 10, 0, 12.5},
		{"smaller", 10, 0, 7.5},
		{"+1", 10, 0, 12.5},
		{"+4", 10, 0, 20},
		{"-3", 10, 0, 2.5},
		{"xx-small", 10, 0, 5},
		{"medium", 10, 0, 10},
		{"xxx-large", 10, 0, 20},
		{"3", 10, 0, 10},
		{"7", 10, 0, 20},
		{"1.5", 10, 0, 15}, // bare multiplier
		// Absolute base takes precedence over the relative base for tables.
		{"larger", 10, 20, 25},
		{"xx-small", 10, 20, 10},
		// Keyword results are floored at the minimum font size.
		{"-3", 1, 0, 1},
		{"xx-small", 1, 0, 1},
	}
	for _, tt := range tests {
		got := css.SizeWith(tt.value, css.SizeOpts{Relative: tt.relative, Base: tt.base})
		if !almostEqual(got, tt.want) {
			t.Errorf("SizeWith(%q, relative=%v, base=%v) = %v, want %v",
				tt.value, tt.relative, tt.base, got, tt.want)
		}
	}
}

func TestSizeAbsoluteUnitsIgnoreRelativeBase(t *testing.T) {
	got := css.SizeWith("12pt", css.SizeOpts{Relative: 100})
	if got != 12.0 {
		t.Errorf("SizeWith(\"12pt\", relative=100) = %v, want 12", got)
	}
}

func TestSizeTokenSequence(t *testing.T) {
	// Shorthand tokenizers hand over values split into pieces.
	if got := css.Size([]string{"12", "pt"}); got != 12.0 {
		t.Errorf("Size([12 pt]) = %v, want 12", got)
	}
	// Slices bypass the cache; repeated calls must stay consistent.
	if got := css.Size([]string{"12", "pt"}); got != 12.0 {
		t.Errorf("Size([12 pt]) second call = %v, want 12", got)
	}
}

func TestSizeTokenSequenceBypassesCache(t *testing.T) {
	// Slice inputs cannot key the cache, so every call recomputes. The
	// parse-failure warning makes each computation countable.
	core, logs := observer.New(zap.WarnLevel)
	cv := css.NewConverter(zap.New(core))

	for range 3 {
		if got := cv.SizeWith([]string{"bogus"}, css.SizeOpts{Default: 5}); got != 5 {
			t.Fatalf("SizeWith([bogus]) = %v, want default 5", got)
		}
	}
	if n := logs.Len(); n != 3 {
		t.Errorf("slice input computed %d times, want 3", n)
	}

	// The equivalent string input is cached after the first computation.
	before := logs.Len()
	for range 3 {
		cv.SizeWith("bogus", css.SizeOpts{Default: 5})
	}
	if n := logs.Len() - before; n != 1 {
		t.Errorf("string input computed %d times, want 1", n)
	}
}

func TestSizeUnparseable(t *testing.T) {
	tests := []struct {
		value any
		opts  css.SizeOpts
		want  float64
	}{
		{"bogus", css.SizeOpts{Default: 11}, 11},
		{"12 34", css.SizeOpts{Default: 3}, 3},
		{"50%", css.SizeOpts{Default: 7}, 7}, // percent needs a relative base
		{"2em", css.SizeOpts{Default: 9}, 9}, // so does em
		{struct{}{}, css.SizeOpts{Default: 5}, 5},
	}
	for _, tt := range tests {
		if got := css.SizeWith(tt.value, tt.opts); got != tt.want {
			t.Errorf("SizeWith(%v) = %v, want default %v", tt.value, got, tt.want)
		}
	}
}

func TestSizeBareFloatFloorsAtZero(t *testing.T) {
	if got := css.Size("-1"); got != 0.0 {
		t.Errorf("Size(\"-1\") = %v, want 0", got)
	}
	if got := css.SizeWith("-1", css.SizeOpts{Signed: true}); got != -1.0 {
		t.Errorf("signed Size(\"-1\") = %v, want -1", got)
	}
}

func TestSizeMemoized(t *testing.T) {
	// Converters share results across identical argument tuples. Different
	// defaults are different tuples and must not collide.
	cv := css.NewConverter(nil)
	if got := cv.SizeWith("nonsense", css.SizeOpts{Default: 1}); got != 1 {
		t.Fatalf("first call = %v", got)
	}
	if got := cv.SizeWith("nonsense", css.SizeOpts{Default: 2}); got != 2 {
		t.Errorf("different default collided in cache: got %v, want 2", got)
	}
	if got := cv.SizeWith("nonsense", css.SizeOpts{Default: 1}); got != 1 {
		t.Errorf("cached result changed: got %v, want 1", got)
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"y", "yes", "1", "true", "YES", "True"} {
		if !css.ParseBool(s) {
			t.Errorf("ParseBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "no", "0", "false", "maybe"} {
		if css.ParseBool(s) {
			t.Errorf("ParseBool(%q) = true, want false", s)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		value string
		want  css.Alignment
	}{
		{"left", css.AlignLeft},
		{"center", css.AlignCenter},
		{"middle", css.AlignCenter},
		{"right", css.AlignRight},
		{"justify", css.AlignJustify},
		{"JUSTIFY", css.AlignJustify},
		{"bogus", css.AlignLeft},
		{"", css.AlignLeft},
	}
	for _, tt := range tests {
		if got := css.ParseAlignment(tt.value, css.AlignLeft); got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
