package emitter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"quizsheet/internal/domain"
)

// utf8BOM lets spreadsheet importers detect the encoding of Korean text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV renders rows as a BOM-prefixed, comma-delimited table with a header row.
func CSV(rows []domain.QuizRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, domain.NewNoRowsError()
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(Headers); err != nil {
		return nil, domain.NewInternalError("failed to write CSV header", err)
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return nil, domain.NewInternalError("failed to write CSV row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, domain.NewInternalError("failed to flush CSV", err)
	}
	return buf.Bytes(), nil
}

// ReadCSV parses a table produced by CSV back into rows.
func ReadCSV(data []byte) ([]domain.QuizRow, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read csv: missing header")
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	rows := make([]domain.QuizRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := fromRecord(rec, i+2)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
