// Package emitter renders quiz rows as Blooket-importable CSV and XLSX tables.
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"quizsheet/internal/domain"
)

// SheetName is the only sheet written to XLSX output.
const SheetName = "Blooket Quiz"

// Headers is the fixed column order of both formats.
var Headers = []string{
	"Question #",
	"Question Text",
	"Answer 1",
	"Answer 2",
	"Answer 3",
	"Answer 4",
	"Time Limit (sec)",
	"Correct Answer(s)",
}

// Format is an output table format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat accepts "csv" and "xlsx" in any case.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, true
	case FormatXLSX:
		return FormatXLSX, true
	}
	return "", false
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Extension() string { return "." + string(f) }

// Render dispatches to CSV or XLSX.
func Render(f Format, rows []domain.QuizRow) ([]byte, error) {
	switch f {
	case FormatCSV:
		return CSV(rows)
	case FormatXLSX:
		return XLSX(rows)
	}
	return nil, domain.NewInvalidInputError(fmt.Sprintf("unsupported format %q", f))
}

func values(r domain.QuizRow) []any {
	return []any{
		r.Number, r.Question,
		r.Answers[0], r.Answers[1], r.Answers[2], r.Answers[3],
		r.TimeLimit, r.Correct,
	}
}

func record(r domain.QuizRow) []string {
	return []string{
		strconv.Itoa(r.Number), r.Question,
		r.Answers[0], r.Answers[1], r.Answers[2], r.Answers[3],
		strconv.Itoa(r.TimeLimit), strconv.Itoa(r.Correct),
	}
}

// fromRecord is the inverse of record; it is used by the readers.
func fromRecord(rec []string, line int) (domain.QuizRow, error) {
	if len(rec) < len(Headers) {
		return domain.QuizRow{}, fmt.Errorf("row %d: expected %d columns, got %d", line, len(Headers), len(rec))
	}
	var row domain.QuizRow
	var err error
	if row.Number, err = strconv.Atoi(strings.TrimSpace(rec[0])); err != nil {
		return domain.QuizRow{}, fmt.Errorf("row %d: question number: %w", line, err)
	}
	row.Question = rec[1]
	copy(row.Answers[:], rec[2:6])
	if row.TimeLimit, err = strconv.Atoi(strings.TrimSpace(rec[6])); err != nil {
		return domain.QuizRow{}, fmt.Errorf("row %d: time limit: %w", line, err)
	}
	if row.Correct, err = strconv.Atoi(strings.TrimSpace(rec[7])); err != nil {
		return domain.QuizRow{}, fmt.Errorf("row %d: correct answer: %w", line, err)
	}
	return row, nil
}

func checkHeader(rec []string) error {
	if len(rec) < len(Headers) {
		return fmt.Errorf("header has %d columns, want %d", len(rec), len(Headers))
	}
	for i, h := range Headers {
		if rec[i] != h {
			return fmt.Errorf("header column %d is %q, want %q", i+1, rec[i], h)
		}
	}
	return nil
}
