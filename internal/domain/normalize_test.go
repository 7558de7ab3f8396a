package domain

import "testing"

func TestNormalizeSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  Illinois  ", want: "Illinois"},
		{name: "case preserved", input: "USA", want: "USA"},
		{name: "compress multiple spaces", input: "New   York", want: "New York"},
		{name: "tabs and newlines", input: "\tSan\t Diego\n", want: "San Diego"},
		{name: "diacritics preserved", input: "Québec", want: "Québec"},
		{name: "punctuation preserved", input: "St. John's", want: "St. John's"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeSegment(tt.input); got != tt.want {
				t.Errorf("NormalizeSegment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewLocation(t *testing.T) {
	t.Parallel()

	got := NewLocation("", " ", "", "Springfield ", "Sangamon", "Illinois", "USA", "Earth")
	want := Location{"", "", "", "Springfield", "Sangamon", "Illinois", "USA"}
	if got != want {
		t.Errorf("NewLocation() = %q, want %q", got, want)
	}

	if short := NewLocation("Main St"); short != (Location{"Main St"}) {
		t.Errorf("NewLocation(short) = %q", short)
	}
}
