package mail

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// ParseRecipients reads a recipient list from CSV. One recipient per row,
// first column the destination address, remaining columns positional
// substitution values. Blank lines are skipped, empty cells are dropped from
// each row, and rows left with zero cells are discarded entirely.
func ParseRecipients(r io.Reader) ([]Recipient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Recipient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse recipient file")
		}
		row := make(Recipient, 0, len(record))
		for _, cell := range record {
			if cell == "" {
				continue
			}
			row = append(row, cell)
		}
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
