package grocery

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader(t *testing.T) {
	input := `# upc, brand, name, price
"00688267039317", "any", "eggs", 77.47
"00025317533003", "Applegate Farms", "hotdogs, uncured", 15.99
`
	r := NewReader(strings.NewReader(input))
	first, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, New("eggs", "any", "00688267039317", decimal.RequireFromString("77.47")), first)

	second, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "hotdogs, uncured", second.Name)
	assert.Equal(t, "Applegate Farms", second.Brand)

	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_RoundTrip(t *testing.T) {
	items := []Item{
		New("eggs", "any", "00688267039317", decimal.RequireFromString("77.47")),
		New(`Nature's Own "Butter" Buns`, "Nature's Own", "00072250018548", decimal.RequireFromString("10.79")),
	}
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.String())
		sb.WriteString("\n")
	}
	r := NewReader(strings.NewReader(sb.String()))
	for _, expect := range items {
		got, ok := r.Next()
		require.True(t, ok)
		assert.True(t, expect.Equal(got), "%v != %v", expect, got)
	}
	_, ok := r.Next()
	assert.False(t, ok)
	assert.NoError(t, r.Err())
}

func TestReader_Next_StopsOnMalformedRecord(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		count       int
	}{
		{"bad price", "\"1\", \"b\", \"n\", 1.00\n\"2\", \"b\", \"n\", cheap\n\"3\", \"b\", \"n\", 3\n", 1},
		{"missing field", "\"1\", \"b\", \"n\"\n", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			r := NewReader(strings.NewReader(tc.input))
			count := 0
			for {
				if _, ok := r.Next(); !ok {
					break
				}
				count++
			}
			assert.Equal(t, tc.count, count)
			assert.Error(t, r.Err())
			_, ok := r.Next()
			assert.False(t, ok)
		})
	}
}
