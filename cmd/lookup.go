package cmd

import (
	"encoding/json"
	"fmt"
)

// LookupCmd prints one catalog entry.
type LookupCmd struct {
	UPC  string `short:"u" long:"upc" description:"universal product code" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *LookupCmd) Execute(_ []string) error {
	s, err := sessionSingleton()
	if err != nil {
		return err
	}
	item, err := s.catalog.Lookup(c.UPC)
	if err != nil {
		return err
	}

	if c.JSON {
		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintf(stdout, "UPC   : %s\n", item.UPC)
	fmt.Fprintf(stdout, "Brand : %s\n", item.Brand)
	fmt.Fprintf(stdout, "Name  : %s\n", item.Name)
	fmt.Fprintf(stdout, "Price : %s\n", s.formatter.Amount(item.Price))
	return nil
}
