package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders monetary amounts for one currency and locale.
// Amounts are carried as float64 through the calculation pipeline and
// only rounded here, at the point of presentation.
type Formatter struct {
	code    string
	printer *message.Printer
}

// NewFormatter validates the ISO 4217 code and locale tag and returns a
// ready formatter.
func NewFormatter(code, locale string) (Formatter, error) {
	if _, err := currency.ParseISO(code); err != nil {
		return Formatter{}, fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	return Formatter{
		code:    code,
		printer: message.NewPrinter(tag),
	}, nil
}

// Code returns the ISO 4217 currency code.
func (f Formatter) Code() string {
	return f.code
}

// Format renders the amount with exactly two fraction digits,
// e.g. "SAR 4,400.00".
func (f Formatter) Format(v float64) string {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f.code + " " + f.printer.Sprintf("%v",
		number.Decimal(rounded, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatWhole renders the amount with no fraction digits,
// e.g. "SAR 4,400". Used where compact figures read better.
func (f Formatter) FormatWhole(v float64) string {
	rounded, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f.code + " " + f.printer.Sprintf("%v",
		number.Decimal(rounded, number.MaxFractionDigits(0)))
}
