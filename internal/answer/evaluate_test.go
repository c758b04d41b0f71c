package answer

import "testing"

func TestEvaluate_NumericMatch(t *testing.T) {
	tests := []struct {
		canonical string
		student   string
		want      bool
	}{
		{"0.5", "1/2", true},
		{"0.5", "50%", true},
		{"1234.5", "1,234.5", true},
		{"12", "12 cm", true},
		{"42", "42", true},
		{"42", "43", false},
		{"0.75", "3/4", true},
	}

	for _, tc := range tests {
		if got := Evaluate(tc.canonical, tc.student); got != tc.want {
			t.Errorf("Evaluate(%q, %q) = %v, want %v", tc.canonical, tc.student, got, tc.want)
		}
	}
}

func TestEvaluate_ToleranceBoundary(t *testing.T) {
	// |5 - 5.0009| = 0.0009 < 0.001 → correct.
	if !Evaluate("5", "5.0009") {
		t.Error("Evaluate(\"5\", \"5.0009\") = false, want true")
	}
	// |5 - 5.002| = 0.002 >= 0.001 → incorrect.
	if Evaluate("5", "5.002") {
		t.Error("Evaluate(\"5\", \"5.002\") = true, want false")
	}
}

func TestEvaluate_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"5", "5.0009"},
		{"5", "5.002"},
		{"1/2", "0.5"},
		{"abc", "ABC"},
		{"abc", "xyz"},
	}

	for _, p := range pairs {
		ab := Evaluate(p[0], p[1])
		ba := Evaluate(p[1], p[0])
		if ab != ba {
			t.Errorf("Evaluate(%q, %q) = %v but Evaluate(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestEvaluate_TextualFallback(t *testing.T) {
	tests := []struct {
		canonical string
		student   string
		want      bool
	}{
		{"triangle", "Triangle", true},
		{"triangle", " triangle ", true},
		{"triangle", "square", false},
		{"<b>triangle</b>", "triangle", true},
	}

	for _, tc := range tests {
		if got := Evaluate(tc.canonical, tc.student); got != tc.want {
			t.Errorf("Evaluate(%q, %q) = %v, want %v", tc.canonical, tc.student, got, tc.want)
		}
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(0.5, 0.5004) {
		t.Error("WithinTolerance(0.5, 0.5004) = false, want true")
	}
	if WithinTolerance(0.5, 0.502) {
		t.Error("WithinTolerance(0.5, 0.502) = true, want false")
	}
}
