package dataset

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"strings"

	"github.com/matzehuels/boxorbit/pkg/errors"
)

// ReadRows parses CSV with a header row into keyed rows.
//
// Quoted fields may contain commas and doubled quotes (""), blank lines are
// skipped and short rows are padded with empty values. Header names and
// values are trimmed of surrounding whitespace.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	header, err := cr.Read()
	if stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.ErrCodeInvalidCSV, "missing header row")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "read header")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCSV, err, "read row %d", len(rows)+2)
		}
		if blank(rec) {
			continue
		}
		row := make(Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = strings.TrimSpace(rec[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Parse reads CSV and coerces every row into a FilmRecord.
func Parse(r io.Reader) ([]FilmRecord, error) {
	rows, err := ReadRows(r)
	if err != nil {
		return nil, err
	}
	films := make([]FilmRecord, len(rows))
	for i, row := range rows {
		films[i] = FromRow(row)
	}
	return films, nil
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
