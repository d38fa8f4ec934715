// Package tablecsv reads and writes the task table as CSV.
package tablecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/gantt/internal/domain"
)

// Ensure Codec implements domain.TableCodec.
var _ domain.TableCodec = (*Codec)(nil)

// ErrMissingHeader is returned when the input has no header row.
var ErrMissingHeader = errors.New("csv: missing header row")

// requiredColumns must be present in the header for import.
var requiredColumns = []string{domain.ColumnID, domain.ColumnDuration, domain.ColumnStartDate}

// Codec converts domain.Table to and from CSV.
// Columns are matched by header name, so spreadsheets may reorder them
// or add columns of their own.
type Codec struct {
	Comma rune // Field delimiter; ',' when zero
}

// New returns a comma-delimited codec.
func New() *Codec {
	return &Codec{Comma: ','}
}

func (c *Codec) comma() rune {
	if c.Comma == 0 {
		return ','
	}
	return c.Comma
}

// Encode writes the header followed by one record per row.
func (c *Codec) Encode(w io.Writer, table domain.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = c.comma()
	if err := cw.Write(domain.TableColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range table {
		if err := cw.Write(row.Values()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Decode reads a header row and the records after it.
// Unknown columns are ignored; missing optional columns read as empty.
// Blank records are skipped, and each row keeps the line it was read from.
func (c *Codec) Decode(r io.Reader) (domain.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = c.comma()
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	positions, err := columnPositions(header)
	if err != nil {
		return nil, err
	}

	table := domain.Table{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if blank(record) {
			continue
		}
		values := make([]string, len(domain.TableColumns))
		for i, pos := range positions {
			if pos >= 0 && pos < len(record) {
				values[i] = record[pos]
			}
		}
		row := domain.RowFromValues(values)
		row.Line, _ = cr.FieldPos(0)
		table = append(table, row)
	}
	return table, nil
}

// columnPositions maps each of domain.TableColumns to its index in header, or -1.
func columnPositions(header []string) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		key := normalize(name)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	positions := make([]int, len(domain.TableColumns))
	for i, col := range domain.TableColumns {
		pos, ok := index[normalize(col)]
		if !ok {
			pos = -1
		}
		positions[i] = pos
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[normalize(col)]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv: missing required columns: %s", strings.Join(missing, ", "))
	}
	return positions, nil
}

// normalize folds a header cell for matching. A UTF-8 byte order mark
// written by spreadsheet tools is dropped.
func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ToLower(strings.TrimSpace(s))
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
