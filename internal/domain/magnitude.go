package domain

import (
	"math"
	"strings"
	"unicode"
)

// magnitudeExponents maps a magnitude code to its power-of-ten exponent.
// Letter codes are looked up lowercase. Codes meaning "no scaling" map to 0.
var magnitudeExponents = map[rune]int{
	'h': 2,
	'k': 3,
	'm': 6,
	'b': 9,
	'+': 1,
	'?': 0,
	'-': 0,
}

// DecodeMagnitude expands a coded damage figure into its numeric value:
// coefficient * 10^exponent, with the exponent taken from the code table.
// An absent or blank code means exponent 0. Digit codes use the digit itself
// as the exponent.
//
// Unrecognized codes never fail; they decode with exponent 0 and a false
// second return so callers can count them for diagnostics.
func DecodeMagnitude(coefficient float64, code string) (float64, bool) {
	runes := []rune(strings.TrimSpace(code))
	if len(runes) == 0 {
		return coefficient, true
	}
	if len(runes) > 1 {
		return coefficient, false
	}

	r := unicode.ToLower(runes[0])
	if r >= '0' && r <= '9' {
		return coefficient * math.Pow10(int(r-'0')), true
	}
	exp, ok := magnitudeExponents[r]
	if !ok {
		return coefficient, false
	}
	return coefficient * math.Pow10(exp), true
}
