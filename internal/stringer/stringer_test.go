package stringer

import (
	"testing"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		s    string
		want string
	}{
		{s: "", want: ""},
		{s: "alice", want: "Alice"},
		{s: "wins", want: "Wins"},
		{s: "van der berg", want: "Van Der Berg"},
		{s: "McDonald", want: "McDonald"},
		{s: "mcDonald", want: "McDonald"},
		{s: "BOB", want: "BOB"},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := Capitalize(tt.s); got != tt.want {
				t.Errorf("Capitalize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 0, want: "0"},
		{n: 999, want: "999"},
		{n: 12345, want: "12,345"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.n); got != tt.want {
				t.Errorf("FormatNumber() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole int
		want        string
	}{
		{part: 0, whole: 0, want: "0.0%"},
		{part: 1, whole: 3, want: "33.3%"},
		{part: 2, whole: 2, want: "100.0%"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Percent(tt.part, tt.whole); got != tt.want {
				t.Errorf("Percent() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
