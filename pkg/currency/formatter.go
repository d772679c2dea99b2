package currency

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const USD = "USD"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders amount with cents and thousands grouping, e.g. "USD 1,234.50".
func FormatUSD(amount float64) string {
	rounded := math.Round(amount*100) / 100

	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	result := currency.USD.String() + " " + printer.Sprintf("%.2f", rounded)
	if negative {
		result = "-" + result
	}

	return result
}
