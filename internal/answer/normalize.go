// Package answer turns free-text learner answers into comparable numeric
// values and decides correctness against a canonical answer.
package answer

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)

	// All three patterns are anchored at the start of the cleaned string.
	// Trailing prose (units, explanations) after the matched prefix is
	// ignored. This is a deliberate simplification, not a tokenizer:
	// "12 cm" parses as 12, but "about 12" does not parse at all.
	fractionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*/\s*(-?\d+(?:\.\d+)?)`)
	percentPattern  = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*%`)
	numberPattern   = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)`)
)

// CleanText strips HTML-ish markup, decodes entities such as &nbsp; and
// &amp;, removes thousands-separator commas, and trims whitespace.
// The text source may embed inline markup, so this runs before any
// numeric parsing and before textual comparison.
func CleanText(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// Normalize extracts a numeric value from free text.
//
// After cleaning, the patterns are tried in order: fraction "a/b"
// (rejected when b = 0), percentage "n%" (divided by 100), then a plain
// decimal or integer. The first successful match wins. Returns
// (0, false) when no pattern matches.
func Normalize(raw string) (float64, bool) {
	s := CleanText(raw)
	if s == "" {
		return 0, false
	}

	if m := fractionPattern.FindStringSubmatch(s); m != nil {
		num, err1 := strconv.ParseFloat(m[1], 64)
		den, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil && den != 0 {
			return num / den, true
		}
		return 0, false
	}

	if m := percentPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return n / 100, true
		}
		return 0, false
	}

	if m := numberPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return n, true
		}
	}

	return 0, false
}
