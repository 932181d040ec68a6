package grocery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItem_Equal(t *testing.T) {
	eggs := New("eggs", "any", "00688267039317", decimal.RequireFromString("77.47"))
	var testCases = []struct {
		description string
		other       Item
		equal       bool
	}{
		{"identical", eggs, true},
		{"same price different scale", New("eggs", "any", "00688267039317", decimal.RequireFromString("77.470")), true},
		{"different price", New("eggs", "any", "00688267039317", decimal.RequireFromString("77.48")), false},
		{"different brand", New("eggs", "Eggland's Best", "00688267039317", decimal.RequireFromString("77.47")), false},
		{"different upc", New("eggs", "any", "00688267039318", decimal.RequireFromString("77.47")), false},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.equal, eggs.Equal(tc.other))
			assert.Equal(t, tc.equal, eggs.Compare(tc.other) == 0)
		})
	}
}

func TestItem_Compare(t *testing.T) {
	price := decimal.RequireFromString("1.00")
	var testCases = []struct {
		description string
		left, right Item
		sign        int
	}{
		{"upc first", New("z", "z", "001", price), New("a", "a", "002", price), -1},
		{"then name", New("b", "a", "001", price), New("a", "z", "001", price), 1},
		{"then brand", New("a", "a", "001", price), New("a", "b", "001", price), -1},
		{"then price", New("a", "a", "001", decimal.RequireFromString("2")), New("a", "a", "001", price), 1},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := tc.left.Compare(tc.right)
			if tc.sign < 0 {
				assert.Negative(t, got)
			} else {
				assert.Positive(t, got)
			}
			assert.Equal(t, -sign(got), sign(tc.right.Compare(tc.left)))
		})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestItem_String(t *testing.T) {
	item := New(`Nature's Own "Butter" Buns`, "Nature's Own", "00072250018548", decimal.RequireFromString("10.7"))
	assert.Equal(t, `"00072250018548", "Nature's Own", "Nature's Own ""Butter"" Buns", 10.70`, item.String())
}
