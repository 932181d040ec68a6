package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/viant/grocery/cart"
	"github.com/viant/grocery/checkout"
	"github.com/viant/grocery/grocery"
	"github.com/viant/grocery/synclist"
)

// ShopCmd walks the demonstration shopping trip: a cart with a broken wheel
// is unloaded onto a working one, rung up and paid.
type ShopCmd struct {
	Expected string `short:"e" long:"expected" description:"expected amount due (prompted on stdin when empty)"`
	Trace    bool   `long:"trace" description:"print the carts after every move to stderr"`
}

// shoppingList is ordered lightest first; the last item goes to the bottom of
// the cart.
func shoppingList() []grocery.Item {
	return []grocery.Item{
		grocery.New("eggs", "any", "00688267039317", decimal.RequireFromString("77.47")),
		grocery.New("bread", "any", "00835841005255", decimal.RequireFromString("8.73")),
		grocery.New("apple pie", "any", "09073649000493", decimal.Zero),
		grocery.New("hotdogs", "Applegate Farms", "00025317533003", decimal.RequireFromString("15.99")),
		grocery.New("rice krispies", "Kellogg's", "00038000291210", decimal.RequireFromString("40.37")),
		grocery.New("milk", "any", "00075457129000", decimal.RequireFromString("30.28")),
	}
}

func (c *ShopCmd) Execute(_ []string) error {
	s, err := sessionSingleton()
	if err != nil {
		return err
	}
	list, err := synclist.From(shoppingList(), synclist.WithCapacity(s.config.Capacity))
	if err != nil {
		return fmt.Errorf("build shopping list: %w", err)
	}

	items := list.Items()
	broken := cart.NewStack[grocery.Item]()
	for i := len(items) - 1; i >= 0; i-- {
		broken.Push(items[i])
	}

	var observe cart.Observer[grocery.Item]
	if c.Trace {
		observe = cart.NewTracer(stderr, func(item grocery.Item) string { return item.Name }).Observe
	}
	working := cart.NewStack[grocery.Item]()
	moves, err := cart.Relocate(broken, working, observe)
	if err != nil {
		return err
	}
	slog.Debug("cart relocated", "items", working.Len(), "moves", moves)

	counter := &checkout.Counter{}
	for !working.Empty() {
		item, _ := working.Pop()
		counter.Place(item)
	}
	receipt := counter.Ring(s.catalog)
	slog.Debug("receipt", "id", receipt.ID, "lines", len(receipt.Lines))
	if err = receipt.Write(stdout, s.formatter); err != nil {
		return err
	}

	expected := c.expected()
	if receipt.Matches(expected) {
		fmt.Fprintln(stderr, "PASS - Amount due matches expected")
	} else {
		fmt.Fprintln(stderr, "FAIL - You're not paying the amount you should be paying")
	}
	return nil
}

// expected parses the -e value or prompts for one.  Unparsable input counts
// as zero.
func (c *ShopCmd) expected() decimal.Decimal {
	text := c.Expected
	if text == "" {
		fmt.Fprint(stdout, "What is your expected amount due?  ")
		_, _ = fmt.Fscan(stdin, &text)
	}
	value, err := decimal.NewFromString(text)
	if err != nil {
		slog.Warn("ignoring expected amount", "value", text, "err", err)
		return decimal.Zero
	}
	return value
}
