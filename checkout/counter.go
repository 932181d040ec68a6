package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viant/grocery/grocery"
)

// Tolerance is the largest difference between a receipt total and an
// expected amount that still counts as a match.
var Tolerance = decimal.New(1, -4)

// Finder resolves a UPC to the catalog's full description and price.
type Finder interface {
	Find(upc string) (*grocery.Item, bool)
}

// Counter is a first-in first-out conveyor belt.
type Counter struct {
	belt []grocery.Item
}

// Place puts items on the belt in order.
func (c *Counter) Place(items ...grocery.Item) {
	c.belt = append(c.belt, items...)
}

func (c *Counter) Len() int { return len(c.belt) }

// Line is one rung-up item.  Item holds the catalog entry when Found, the
// scanned item otherwise.
type Line struct {
	Item  grocery.Item
	Found bool
}

// Receipt lists rung-up items and their total.
type Receipt struct {
	ID    uuid.UUID
	Lines []Line
	Total decimal.Decimal
}

// Ring empties the belt front first, pricing every item from catalog.  Items
// the catalog does not know are free.
func (c *Counter) Ring(catalog Finder) *Receipt {
	receipt := &Receipt{ID: uuid.New(), Total: decimal.Zero}
	for len(c.belt) > 0 {
		scanned := c.belt[0]
		c.belt[0] = grocery.Item{}
		c.belt = c.belt[1:]

		entry, ok := catalog.Find(scanned.UPC)
		if !ok {
			receipt.Lines = append(receipt.Lines, Line{Item: scanned})
			continue
		}
		receipt.Lines = append(receipt.Lines, Line{Item: *entry, Found: true})
		receipt.Total = receipt.Total.Add(entry.Price)
	}
	c.belt = nil
	return receipt
}

// Matches reports whether the total is within Tolerance of expected.
func (r *Receipt) Matches(expected decimal.Decimal) bool {
	return r.Total.Sub(expected).Abs().LessThan(Tolerance)
}
