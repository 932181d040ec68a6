package checkout

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/grocery/grocery"
)

type finder map[string]grocery.Item

func (f finder) Find(upc string) (*grocery.Item, bool) {
	item, ok := f[upc]
	if !ok {
		return nil, false
	}
	return &item, true
}

func price(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestCounter_Ring(t *testing.T) {
	catalog := finder{
		"001": grocery.New("milk", "Darigold", "001", price("3.49")),
		"002": grocery.New("bread", "Nature's Own", "002", price("2.50")),
	}
	counter := &Counter{}
	counter.Place(
		grocery.New("bread", "any", "002", price("0")),
		grocery.New("apple pie", "any", "999", price("9.99")),
		grocery.New("milk", "any", "001", price("0")),
	)
	assert.Equal(t, 3, counter.Len())

	receipt := counter.Ring(catalog)
	assert.Equal(t, 0, counter.Len())
	assert.NotEqual(t, uuid.Nil, receipt.ID)
	require.Len(t, receipt.Lines, 3)
	assert.Equal(t, "Nature's Own", receipt.Lines[0].Item.Brand)
	assert.False(t, receipt.Lines[1].Found)
	assert.Equal(t, "apple pie", receipt.Lines[1].Item.Name)
	assert.Equal(t, "Darigold", receipt.Lines[2].Item.Brand)
	assert.True(t, receipt.Total.Equal(price("5.99")))

	assert.True(t, receipt.Matches(price("5.99")))
	assert.True(t, receipt.Matches(price("5.99005")))
	assert.False(t, receipt.Matches(price("6.00")))

	empty := counter.Ring(catalog)
	assert.Empty(t, empty.Lines)
	assert.True(t, empty.Total.IsZero())
	assert.NotEqual(t, receipt.ID, empty.ID)
}

func TestReceipt_Write(t *testing.T) {
	f, err := NewFormatter("en-US", "")
	require.NoError(t, err)
	receipt := &Receipt{
		Lines: []Line{
			{Item: grocery.New("eggs", "any", "00688267039317", price("77.47")), Found: true},
			{Item: grocery.New("apple pie", "any", "09073649000493", price("0"))},
		},
		Total: price("77.47"),
	}
	var sb strings.Builder
	require.NoError(t, receipt.Write(&sb, f))
	out := sb.String()
	assert.Contains(t, out, `"00688267039317", "any", "eggs", 77.47`+"\n")
	assert.Contains(t, out, "09073649000493 (apple pie) not found, so today is your lucky day - You get it free! Hooray!\n")
	assert.Contains(t, out, strings.Repeat("-", 25)+"\nTotal  ")
	assert.Contains(t, out, "77.47\n\n\n")
}

func TestFormatter(t *testing.T) {
	var testCases = []struct {
		description string
		locale      string
		currency    string
		amount      string
		contains    []string
		expectErr   bool
	}{
		{description: "us dollars", locale: "en-US", amount: "172.84", contains: []string{"$", "172.84"}},
		{description: "grouping", locale: "en-US", amount: "1234.5", contains: []string{"1,234.50"}},
		{description: "explicit currency", locale: "en-US", currency: "EUR", amount: "3", contains: []string{"€", "3.00"}},
		{description: "german decimals", locale: "de-DE", amount: "172.84", contains: []string{"172,84"}},
		{description: "bad locale", locale: "not a locale!", expectErr: true},
		{description: "bad currency", locale: "en-US", currency: "XYZW", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			f, err := NewFormatter(tc.locale, tc.currency)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			got := f.Amount(price(tc.amount))
			for _, fragment := range tc.contains {
				assert.Contains(t, got, fragment)
			}
		})
	}
}
