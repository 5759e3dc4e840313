// Package css converts textual CSS values (lengths, sizes, colors, alignment
// and border keywords) into numeric results usable by a page layout engine.
// All results are expressed in points.
package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Value is a single tokenized CSS property value.
type Value struct {
	Raw     string  // original value text (e.g. "1.2em", "larger", "#ff0000")
	Value   float64 // numeric component if applicable
	Unit    string  // unit if applicable: "em", "px", "%", "pt", ...
	Keyword string  // keyword if applicable: "larger", "auto", "inherit", ...
}

// tokenizeValue classifies a single CSS value string using the CSS lexer.
// Multi-token and function values are kept whole in Keyword - the callers
// (size and color resolution) only need single dimensions, percentages,
// numbers, idents and hashes split apart.
func tokenizeValue(raw string) Value {
	val := Value{Raw: raw}
	if raw == "" {
		return val
	}

	lexer := css.NewLexer(parse.NewInput(strings.NewReader(raw)))

	type token struct {
		tt   css.TokenType
		data string
	}
	var tokens []token
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt == css.WhitespaceToken {
			continue
		}
		tokens = append(tokens, token{tt, string(data)})
	}

	if len(tokens) != 1 {
		val.Keyword = raw
		return val
	}

	t := tokens[0]
	switch t.tt {
	case css.DimensionToken:
		val.Value, val.Unit = splitDimension(t.data)
	case css.PercentageToken:
		val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		val.Unit = "%"
	case css.NumberToken:
		val.Value, _ = strconv.ParseFloat(t.data, 64)
		val.Unit = numberUnit
	case css.IdentToken:
		val.Keyword = strings.ToLower(t.data)
	case css.HashToken:
		val.Keyword = t.data
	default:
		val.Keyword = raw
	}
	return val
}

// numberUnit marks a bare numeric token so it can be told apart from the
// zero Value.
const numberUnit = "\x00number"

// splitDimension extracts the numeric value and unit from a dimension token.
func splitDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}
	if numEnd == 0 {
		return 0, ""
	}
	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	return num, strings.ToLower(s[numEnd:])
}
