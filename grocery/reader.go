package grocery

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Reader decodes items from text records of the form
//
//	"00688267039317", "any", "eggs", 77.47
//
// one record per line: UPC, brand, product name and price.  Lines starting
// with '#' are ignored.
type Reader struct {
	csv *csv.Reader
	err error
}

// NewReader returns a Reader decoding r.
func NewReader(r io.Reader) *Reader {
	c := csv.NewReader(r)
	c.FieldsPerRecord = 4
	c.TrimLeadingSpace = true
	c.Comment = '#'
	c.ReuseRecord = true
	return &Reader{csv: c}
}

// Read decodes the next item.  It returns io.EOF at the end of input.
func (r *Reader) Read() (Item, error) {
	record, err := r.csv.Read()
	if err != nil {
		return Item{}, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		line, _ := r.csv.FieldPos(3)
		return Item{}, fmt.Errorf("line %d: invalid price %q: %w", line, record[3], err)
	}
	return Item{
		UPC:   strings.TrimSpace(record[0]),
		Brand: record[1],
		Name:  record[2],
		Price: price,
	}, nil
}

// Next returns the next item, or false once the input is exhausted or a
// record cannot be decoded.  Err reports the decoding failure, if any.
func (r *Reader) Next() (Item, bool) {
	if r.err != nil {
		return Item{}, false
	}
	item, err := r.Read()
	if err != nil {
		r.err = err
		return Item{}, false
	}
	return item, true
}

// Err returns the first non-EOF error that stopped Next.
func (r *Reader) Err() error {
	if errors.Is(r.err, io.EOF) {
		return nil
	}
	return r.err
}
