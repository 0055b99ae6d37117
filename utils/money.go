package utils

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders a whole-unit amount with its currency code, e.g. "EUR 1,234".
// Unknown codes are printed as given.
func FormatMoney(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if unit, err := currency.ParseISO(code); err == nil {
		code = unit.String()
	}
	if code == "" {
		return moneyPrinter.Sprintf("%.0f", amount)
	}
	return moneyPrinter.Sprintf("%s %.0f", code, amount)
}
