package catalog

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/grocery/grocery"
)

func upload(t *testing.T, URL, content string) {
	t.Helper()
	fs := afs.New()
	require.NoError(t, fs.Upload(context.Background(), URL, 0644, bytes.NewReader([]byte(content))))
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "builtin", c.Source())
	assert.Equal(t, 7, c.Len())

	eggs, ok := c.Find("00688267039317")
	require.True(t, ok)
	assert.Equal(t, "eggs", eggs.Name)
	assert.True(t, eggs.Price.Equal(decimal.RequireFromString("77.47")))

	_, ok = c.Find("09073649000493")
	assert.False(t, ok)
	_, err := c.Lookup("09073649000493")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	var testCases = []struct {
		description string
		URL         string
		content     string
		expectLen   int
		expectErr   bool
	}{
		{
			description: "yaml document",
			URL:         "mem://localhost/catalog/load.yaml",
			content: `items:
  - upc: "001"
    brand: any
    name: salt
    price: "0.99"
  - upc: "002"
    brand: any
    name: pepper
    price: 2.5
`,
			expectLen: 2,
		},
		{
			description: "text records",
			URL:         "mem://localhost/catalog/load.dat",
			content:     "\"001\", \"any\", \"salt\", 0.99\n\"001\", \"any\", \"sea salt\", 1.99\n\"003\", \"any\", \"oil\", 4\n",
			expectLen:   2,
		},
		{
			description: "invalid price",
			URL:         "mem://localhost/catalog/bad.yaml",
			content:     "items:\n  - upc: \"001\"\n    price: cheap\n",
			expectErr:   true,
		},
		{
			description: "missing upc",
			URL:         "mem://localhost/catalog/noupc.yaml",
			content:     "items:\n  - name: salt\n    price: \"1\"\n",
			expectErr:   true,
		},
		{
			description: "malformed text record",
			URL:         "mem://localhost/catalog/bad.dat",
			content:     "\"001\", \"any\"\n",
			expectErr:   true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			upload(t, tc.URL, tc.content)
			c, err := Load(ctx, tc.URL)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLen, c.Len())
			assert.Equal(t, tc.URL, c.Source())
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), "mem://localhost/catalog/does-not-exist.yaml")
	assert.Error(t, err)

	c, err := Load(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "builtin", c.Source())
}

func TestCatalog_List(t *testing.T) {
	price := decimal.RequireFromString("1")
	c := New(
		grocery.New("rice krispies", "Kellogg's", "00038000291210", price),
		grocery.New("milk", "any", "00075457129000", price),
		grocery.New("rice", "any", "00011110000001", price),
	)
	var names []string
	for _, item := range c.List("rice") {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"rice", "rice krispies"}, names)
	assert.Len(t, c.List("*"), 3)
	assert.Len(t, c.List("0007"), 1)
	assert.Empty(t, c.List("bread"))

	assert.False(t, c.Add(grocery.New("whole milk", "any", "00075457129000", price)))
	milk, err := c.Lookup("00075457129000")
	require.NoError(t, err)
	assert.Equal(t, "whole milk", milk.Name)
}
