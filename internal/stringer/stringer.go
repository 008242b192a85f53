package stringer

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Capitalize upper-cases the first letter of every word and leaves the rest
// as typed, so "mcDonald" becomes "McDonald".
func Capitalize(s string) string {
	// a Caser keeps state and must not be shared between goroutines
	return cases.Title(language.English, cases.NoLower).String(s)
}

// FormatNumber groups digits, e.g. 12345 -> "12,345".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent formats part of whole with one decimal, e.g. "33.3%".
func Percent(part, whole int) string {
	if whole == 0 {
		return "0.0%"
	}
	return printer.Sprintf("%.1f%%", float64(part)*100/float64(whole))
}
