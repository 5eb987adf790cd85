package counter

import "testing"

func TestParsePattern_NoSymbols(t *testing.T) {
	if _, err := ParsePattern("..."); err == nil {
		t.Fatal("ParsePattern() expected error for pattern without counting symbols")
	}
	if _, err := ParsePattern(""); err == nil {
		t.Fatal("ParsePattern() expected error for empty pattern")
	}
}

func TestPattern_Format(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		values  []int
		want    string
	}{
		{"plain arabic", "1", []int{3}, "3"},
		{"arabic with suffix", "1.", []int{3}, "3."},
		{"two levels", "1.1.", []int{2, 5}, "2.5."},
		{"reused last piece", "1.", []int{1, 2, 3}, "1.2.3."},
		{"mixed symbols", "1.a.", []int{4, 2}, "4.b."},
		{"upper letters", "A)", []int{28}, "AB)"},
		{"lower roman", "i", []int{14}, "xiv"},
		{"upper roman", "I —", []int{1999}, "MCMXCIX —"},
		{"prefix kept", "§1", []int{7}, "§7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern(%q) error = %v", tt.pattern, err)
			}
			if got := p.Format(tt.values...); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestLetters_Bounds(t *testing.T) {
	if got := letters(0, false); got != "0" {
		t.Errorf("letters(0) = %q, want %q", got, "0")
	}
	if got := letters(26, false); got != "z" {
		t.Errorf("letters(26) = %q, want %q", got, "z")
	}
	if got := letters(27, false); got != "aa" {
		t.Errorf("letters(27) = %q, want %q", got, "aa")
	}
}

func TestFigureKey(t *testing.T) {
	if got := FigureKey("image"); got != Key("figure:image") {
		t.Errorf("FigureKey(image) = %q", got)
	}
	if got := FigureKey(""); got != Key("figure") {
		t.Errorf("FigureKey() = %q", got)
	}
	if got := FigureKey("table").Kind(); got != "figure" {
		t.Errorf("Kind() = %q, want figure", got)
	}
}
