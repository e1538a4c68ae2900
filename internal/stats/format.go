package stats

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with its currency symbol for the
// presentation layer, e.g. "$1,250.00". The decimal is rounded to two places
// by StringFixed and never converted through float64, so every digit of large
// totals survives. Unknown currency codes fall back to a plain "CODE 12.34"
// rendering.
func FormatAmount(code string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	unit, err := currency.ParseISO(code)
	if err != nil {
		return code + " " + fixed
	}

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + code + " " + fixed
	}

	symbol := amountPrinter.Sprint(currency.Symbol(unit))
	return sign + symbol + amountPrinter.Sprintf("%d", units) + "." + frac
}
