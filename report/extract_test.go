package report

import "testing"

func TestExtractHoursRejectsTextWithoutDigits(t *testing.T) {
	texts := []string{
		"",
		"worked all day",
		"отработал много часов",
		"no numbers here at all",
		"☕☕☕",
	}
	for _, text := range texts {
		if _, ok := ExtractHours(text); ok {
			t.Errorf("ExtractHours(%q) accepted a text without digits", text)
		}
	}
}

func TestExtractHoursDecimalSeparators(t *testing.T) {
	dot, okDot := ExtractHours("отработал 7.5 часов")
	comma, okComma := ExtractHours("отработал 7,5 часов")
	if !okDot || !okComma {
		t.Fatalf("expected both separators to parse, got ok=%v/%v", okDot, okComma)
	}
	if dot != comma {
		t.Errorf("separator mismatch: %v (dot) != %v (comma)", dot, comma)
	}
	if dot != 7.5 {
		t.Errorf("expected 7.5, got %v", dot)
	}
}

func TestExtractHoursClaims(t *testing.T) {
	cases := []struct {
		text  string
		hours float64
		ok    bool
	}{
		{"worked 9 hours", 9, true},
		{"I worked 2h today", 2, true},
		{"Worked 8", 8, true},
		{"Отработала 3 часа", 3, true},
		{"работал 11 часов подряд", 11, true},
		{"сегодня отработал 0,5 часа", 0.5, true},
		// Verb anchor: bare numbers and embedded verbs are not claims.
		{"7.5", 0, false},
		{"meeting at 15", 0, false},
		{"networked 5 hours", 0, false},
		{"переработал4", 0, false},
	}
	for _, tc := range cases {
		hours, ok := ExtractHours(tc.text)
		if ok != tc.ok {
			t.Errorf("ExtractHours(%q) ok = %v, want %v", tc.text, ok, tc.ok)
			continue
		}
		if ok && hours != tc.hours {
			t.Errorf("ExtractHours(%q) = %v, want %v", tc.text, hours, tc.hours)
		}
	}
}
