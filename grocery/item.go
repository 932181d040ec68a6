package grocery

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Item is a product identified by its UPC code.
type Item struct {
	UPC   string          `yaml:"upc" json:"upc"`
	Brand string          `yaml:"brand" json:"brand"`
	Name  string          `yaml:"name" json:"name"`
	Price decimal.Decimal `yaml:"-" json:"price"`
}

// New creates an item; price is given in the currency's major unit.
func New(name, brand, upc string, price decimal.Decimal) Item {
	return Item{UPC: upc, Brand: brand, Name: name, Price: price}
}

// Equal reports whether every field matches.
func (i Item) Equal(other Item) bool {
	return i.UPC == other.UPC &&
		i.Name == other.Name &&
		i.Brand == other.Brand &&
		i.Price.Equal(other.Price)
}

// Compare orders by UPC, then name, brand and price.
func (i Item) Compare(other Item) int {
	if c := strings.Compare(i.UPC, other.UPC); c != 0 {
		return c
	}
	if c := strings.Compare(i.Name, other.Name); c != 0 {
		return c
	}
	if c := strings.Compare(i.Brand, other.Brand); c != 0 {
		return c
	}
	return i.Price.Cmp(other.Price)
}

// String renders the item in the same format Reader parses.
func (i Item) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", quote(i.UPC), quote(i.Brand), quote(i.Name), i.Price.StringFixed(2))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
