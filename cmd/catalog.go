package cmd

import (
	"fmt"
)

// CatalogCmd prints catalog entries, ordered by UPC.
type CatalogCmd struct {
	Pattern string `short:"p" long:"pattern" description:"UPC or name prefix, * for all" default:"*"`
}

func (c *CatalogCmd) Execute(_ []string) error {
	s, err := sessionSingleton()
	if err != nil {
		return err
	}
	for _, item := range s.catalog.List(c.Pattern) {
		fmt.Fprintf(stdout, "%s\t%s\t%s\t%s\n", item.UPC, item.Brand, item.Name, item.Price.StringFixed(2))
	}
	return nil
}
