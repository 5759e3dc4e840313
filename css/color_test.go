package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"htmlpdf/css"
)

var transparent = css.Color{} // zero value used as "no color" default

func TestParseColorNamed(t *testing.T) {
	tests := []struct {
		value string
		want  css.Color
	}{
		{"red", css.Color{R: 1, G: 0, B: 0, A: 1}},
		{"RED", css.Color{R: 1, G: 0, B: 0, A: 1}},
		{" blue ", css.Color{R: 0, G: 0, B: 1, A: 1}},
		{"lime", css.Color{R: 0, G: 1, B: 0, A: 1}},
		{"black", css.Color{R: 0, G: 0, B: 0, A: 1}},
		{"white", css.Color{R: 1, G: 1, B: 1, A: 1}},
	}
	for _, tt := range tests {
		got := css.ParseColor(tt.value, transparent)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseColor(%q) mismatch (-want +got):\n%s", tt.value, diff)
		}
	}
}

func TestParseColorHexRoundTrip(t *testing.T) {
	// A name and its hex spelling must resolve identically.
	pairs := []struct {
		name, hex string
	}{
		{"red", "#ff0000"},
		{"blue", "#0000ff"},
		{"white", "#ffffff"},
	}
	for _, p := range pairs {
		byName := css.ParseColor(p.name, transparent)
		byHex := css.ParseColor(p.hex, transparent)
		if byName != byHex {
			t.Errorf("%q -> %+v but %q -> %+v", p.name, byName, p.hex, byHex)
		}
	}
}

func TestParseColorShortHex(t *testing.T) {
	got := css.ParseColor("#f0a", transparent)
	want := css.ParseColor("#ff00aa", transparent)
	if got != want {
		t.Errorf("short hex #f0a = %+v, long form = %+v", got, want)
	}
}

func TestParseColorRGBFunction(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgb(153,51,153)", "#993399"},
		// Tokenizer decoration around the function must not matter.
		{"<css function: rgb(153, 51, 153)>", "#993399"},
		// Out-of-range channels clamp instead of wrapping.
		{"rgb(300, 0, 0)", "#ff0000"},
	}
	for _, tt := range tests {
		got := css.ParseColor(tt.value, transparent)
		want := css.ParseColor(tt.want, transparent)
		if got != want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.value, got, want)
		}
	}
}

func TestParseColorDefaults(t *testing.T) {
	def := css.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	for _, value := range []string{"transparent", "none", "no-such-color", "#zzz", ""} {
		if got := css.ParseColor(value, def); got != def {
			t.Errorf("ParseColor(%q) = %+v, want default", value, got)
		}
	}
}

func TestParseColorPassThrough(t *testing.T) {
	c := css.Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	if got := css.ParseColor(c, transparent); got != c {
		t.Errorf("resolved color did not pass through: %+v", got)
	}
}

func TestParseColorSystemColors(t *testing.T) {
	// System colors come from the 0-255 scale part of the table.
	got := css.ParseColor("buttonhighlight", transparent)
	want := css.Color{R: 1, G: 1, B: 1, A: 1}
	if got != want {
		t.Errorf("buttonhighlight = %+v, want %+v", got, want)
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    css.Color
		want string
	}{
		{css.Color{R: 1, G: 0, B: 0, A: 1}, "#ff0000"},
		{css.Color{R: 0, G: 0, B: 0, A: 1}, "#000000"},
		{css.Color{R: 1, G: 1, B: 1, A: 1}, "#ffffff"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestBorderStyle(t *testing.T) {
	if got := css.BorderStyle("solid", ""); got != "solid" {
		t.Errorf("BorderStyle(solid) = %q", got)
	}
	for _, v := range []string{"none", "hidden", "NONE", ""} {
		if got := css.BorderStyle(v, "dotted"); got != "dotted" {
			t.Errorf("BorderStyle(%q) = %q, want default", v, got)
		}
	}
}
