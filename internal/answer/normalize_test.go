package answer

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalize_PlainNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"-7", -7},
		{"3.14", 3.14},
		{"0.5", 0.5},
		{" 12 ", 12},
		{"-0.25", -0.25},
	}

	for _, tc := range tests {
		got, ok := Normalize(tc.input)
		if !ok {
			t.Errorf("Normalize(%q) = no value, want %v", tc.input, tc.want)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Fractions(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1/2", 0.5},
		{"3/4", 0.75},
		{"-1/2", -0.5},
		{"7/2", 3.5},
		{"1 / 4", 0.25},
	}

	for _, tc := range tests {
		got, ok := Normalize(tc.input)
		if !ok {
			t.Errorf("Normalize(%q) = no value, want %v", tc.input, tc.want)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_ZeroDenominator(t *testing.T) {
	if _, ok := Normalize("3/0"); ok {
		t.Error("Normalize(\"3/0\") parsed, want no value")
	}
}

func TestNormalize_Percentages(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"50%", 0.5},
		{"100%", 1},
		{"12.5%", 0.125},
		{"50 %", 0.5},
		{"-20%", -0.2},
	}

	for _, tc := range tests {
		got, ok := Normalize(tc.input)
		if !ok {
			t.Errorf("Normalize(%q) = no value, want %v", tc.input, tc.want)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_ThousandsSeparators(t *testing.T) {
	got, ok := Normalize("1,234.5")
	if !ok || !almostEqual(got, 1234.5) {
		t.Errorf("Normalize(\"1,234.5\") = %v, %v, want 1234.5", got, ok)
	}

	got, ok = Normalize("1,000,000")
	if !ok || !almostEqual(got, 1_000_000) {
		t.Errorf("Normalize(\"1,000,000\") = %v, %v, want 1000000", got, ok)
	}
}

func TestNormalize_TrailingUnits(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"12 cm", 12},
		{"45 kg", 45},
		{"30°", 30},
		// Documented behavior, not a guess: a leading number followed by
		// arbitrary prose parses to that number because the patterns are
		// anchored at the start only.
		{"3 bananas", 3},
	}

	for _, tc := range tests {
		got, ok := Normalize(tc.input)
		if !ok {
			t.Errorf("Normalize(%q) = no value, want %v", tc.input, tc.want)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Markup(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"<p>42</p>", 42},
		{"&nbsp;7", 7},
		{"<span>1/2</span>", 0.5},
	}

	for _, tc := range tests {
		got, ok := Normalize(tc.input)
		if !ok {
			t.Errorf("Normalize(%q) = no value, want %v", tc.input, tc.want)
			continue
		}
		if !almostEqual(got, tc.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_NoValue(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"banana",
		"about twelve",
		"half",
		"x + 2",
	}

	for _, input := range tests {
		if got, ok := Normalize(input); ok {
			t.Errorf("Normalize(%q) = %v, want no value", input, got)
		}
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>hello</b>", "hello"},
		{"a &amp; b", "a & b"},
		{"12&nbsp;cm", "12 cm"},
		{" 1,234 ", "1234"},
	}

	for _, tc := range tests {
		if got := CleanText(tc.input); got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
