package site

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var viPrinter = message.NewPrinter(language.Vietnamese)

// FormatStat formats an about page counter the way vi-VN locales do:
// 12000 becomes "12.000". Numbers below 1000 are printed as-is.
func FormatStat(n int) string {
	if n < 1000 && n > -1000 {
		return strconv.Itoa(n)
	}
	return viPrinter.Sprintf("%d", n)
}
