package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders amounts like $1,234.50 and -$12.00.
func FormatCurrency(amount float64) string {
	if amount < 0 {
		return "-$" + currencyPrinter.Sprintf("%.2f", -amount)
	}
	return "$" + currencyPrinter.Sprintf("%.2f", amount)
}
