package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/viant/afs"
	"github.com/viant/grocery/grocery"
	"github.com/viant/grocery/internal/matcher"
	"github.com/viant/grocery/internal/syncmap"
	"gopkg.in/yaml.v3"
)

// ErrNotFound indicates no catalog entry has the requested UPC.
var ErrNotFound = errors.New("item not found")

//go:embed sample.yaml
var sample []byte

// Catalog indexes items by UPC.  It is safe for concurrent use.
type Catalog struct {
	source string
	index  *syncmap.Map[grocery.Item]
}

type document struct {
	Items []entry `yaml:"items"`
}

type entry struct {
	UPC   string `yaml:"upc"`
	Brand string `yaml:"brand"`
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// New creates a catalog holding items; a later item replaces an earlier one
// with the same UPC.
func New(items ...grocery.Item) *Catalog {
	c := &Catalog{index: syncmap.New[grocery.Item]()}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// Default returns the built-in demonstration catalog.
func Default() *Catalog {
	c, err := Decode(sample)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid embedded sample: %v", err))
	}
	c.source = "builtin"
	return c
}

// Load downloads and decodes the catalog at URL.  Documents with a .yaml or
// .yml extension are decoded as YAML, anything else as grocery text records.
// An empty URL yields the built-in catalog.
func Load(ctx context.Context, URL string) (*Catalog, error) {
	if URL == "" {
		return Default(), nil
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("download catalog %q: %w", URL, err)
	}
	var c *Catalog
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml":
		c, err = Decode(data)
	default:
		c, err = DecodeText(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", URL, err)
	}
	c.source = URL
	slog.Debug("catalog loaded", "source", URL, "items", c.Len())
	return c, nil
}

// Decode builds a catalog from a YAML document.
func Decode(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	c := New()
	for i, e := range doc.Items {
		if e.UPC == "" {
			return nil, fmt.Errorf("item %d: missing upc", i)
		}
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): invalid price %q: %w", i, e.UPC, e.Price, err)
		}
		c.Add(grocery.New(e.Name, e.Brand, e.UPC, price))
	}
	return c, nil
}

// DecodeText builds a catalog from grocery text records.
func DecodeText(data []byte) (*Catalog, error) {
	r := grocery.NewReader(bytes.NewReader(data))
	c := New()
	for {
		item, ok := r.Next()
		if !ok {
			break
		}
		c.Add(item)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// Source returns the URL the catalog was loaded from.
func (c *Catalog) Source() string { return c.source }

// Add stores item and reports whether its UPC was new.
func (c *Catalog) Add(item grocery.Item) bool {
	return c.index.Put(item.UPC, item)
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return c.index.Len() }

// Find returns the entry for upc, or false when there is none.
func (c *Catalog) Find(upc string) (*grocery.Item, bool) {
	item, ok := c.index.Lookup(upc)
	if !ok {
		return nil, false
	}
	return &item, true
}

// Lookup is Find with an ErrNotFound error for a missing entry.
func (c *Catalog) Lookup(upc string) (grocery.Item, error) {
	item, ok := c.index.Lookup(upc)
	if !ok {
		return grocery.Item{}, fmt.Errorf("upc %s: %w", upc, ErrNotFound)
	}
	return item, nil
}

// List returns, ordered by UPC, the entries whose UPC or name matches pattern.
func (c *Catalog) List(pattern string) []grocery.Item {
	var ret []grocery.Item
	for _, item := range c.index.Values() {
		if matcher.Match(pattern, item.UPC, item.Name) {
			ret = append(ret, item)
		}
	}
	return ret
}
