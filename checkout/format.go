package checkout

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders money amounts for a locale.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter returns a formatter for a BCP 47 locale such as "en-US".  An
// empty currencyCode selects the currency of the locale's region.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	var unit currency.Unit
	if currencyCode != "" {
		if unit, err = currency.ParseISO(currencyCode); err != nil {
			return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
		}
	} else {
		unit, _ = currency.FromTag(tag)
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}, nil
}

// Amount renders value with the currency symbol and two decimals.
func (f *Formatter) Amount(value decimal.Decimal) string {
	return f.printer.Sprintf("%v%v", currency.Symbol(f.unit), number.Decimal(value.InexactFloat64(), number.Scale(2)))
}

// Write renders the receipt: one line per item, then the total.
func (r *Receipt) Write(w io.Writer, f *Formatter) error {
	var sb strings.Builder
	for _, line := range r.Lines {
		if line.Found {
			sb.WriteString(line.Item.String())
		} else {
			fmt.Fprintf(&sb, "%s (%s) not found, so today is your lucky day - You get it free! Hooray!", line.Item.UPC, line.Item.Name)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "%s\nTotal  %s\n\n\n", strings.Repeat("-", 25), f.Amount(r.Total))
	_, err := io.WriteString(w, sb.String())
	return err
}
