package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/viant/afs"
	"github.com/viant/grocery/grocery"
	"github.com/viant/grocery/synclist"
)

// ListCmd loads a grocery list, applies removals and move-to-front requests,
// then prints it.
type ListCmd struct {
	Input    string   `short:"i" long:"input" description:"grocery list in item text format (stdin if empty or -)"`
	Merge    string   `short:"m" long:"merge" description:"second grocery list appended after the first"`
	Capacity int      `short:"c" long:"capacity" description:"list capacity (configured capacity when zero)"`
	Front    []string `long:"front" description:"UPC of an item to move to the front, repeatable"`
	Remove   []string `long:"remove" description:"UPC of an item to remove, repeatable"`
}

func (c *ListCmd) Execute(_ []string) error {
	s, err := sessionSingleton()
	if err != nil {
		return err
	}
	capacity := c.Capacity
	if capacity == 0 {
		capacity = s.config.Capacity
	}

	ctx := context.Background()
	list, err := loadList(ctx, c.Input, capacity)
	if err != nil {
		return err
	}
	if c.Merge != "" {
		other, err := loadList(ctx, c.Merge, capacity)
		if err != nil {
			return err
		}
		if err = list.Merge(other); err != nil {
			return fmt.Errorf("merge %q: %w", c.Merge, err)
		}
	}

	for _, upc := range c.Remove {
		item, ok := list.At(list.IndexFunc(byUPC(upc)))
		if !ok {
			slog.Warn("nothing to remove", "upc", upc)
			continue
		}
		if err = list.Remove(item); err != nil {
			return err
		}
	}
	for _, upc := range c.Front {
		item, ok := list.At(list.IndexFunc(byUPC(upc)))
		if !ok {
			slog.Warn("nothing to move", "upc", upc)
			continue
		}
		if err = list.MoveToFront(item); err != nil {
			return err
		}
	}

	if _, err = list.WriteTo(stdout); err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout)
	return err
}

func byUPC(upc string) func(grocery.Item) bool {
	return func(item grocery.Item) bool { return item.UPC == upc }
}

// loadList reads items from location (a file path or afs URL), or stdin for
// "" and "-".  A malformed record ends the list; what was read before it is
// kept.
func loadList(ctx context.Context, location string, capacity int) (*synclist.List[grocery.Item], error) {
	var r io.Reader = stdin
	if location != "" && location != "-" {
		data, err := afs.New().DownloadWithURL(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("download grocery list %q: %w", location, err)
		}
		r = bytes.NewReader(data)
	}

	list := synclist.New[grocery.Item](synclist.WithCapacity(capacity))
	reader := grocery.NewReader(r)
	count, err := list.Load(reader)
	if err != nil {
		return nil, fmt.Errorf("load grocery list: %w", err)
	}
	if err = reader.Err(); err != nil {
		slog.Warn("grocery list truncated", "location", location, "err", err)
	}
	slog.Debug("grocery list loaded", "location", location, "items", count)
	return list, nil
}
