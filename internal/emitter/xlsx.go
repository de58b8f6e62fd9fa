package emitter

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"quizsheet/internal/domain"
)

const defaultSheet = "Sheet1"

// XLSX renders rows into a workbook with the single sheet SheetName.
// Number, time limit and correct answer are stored as numeric cells.
func XLSX(rows []domain.QuizRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, domain.NewNoRowsError()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, domain.NewInternalError("failed to name sheet", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, domain.NewInternalError("failed to write XLSX header", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, domain.NewInternalError("failed to address XLSX row", err)
		}
		vals := values(r)
		if err := f.SetSheetRow(SheetName, cell, &vals); err != nil {
			return nil, domain.NewInternalError("failed to write XLSX row", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, domain.NewInternalError("failed to serialize XLSX", err)
	}
	return buf.Bytes(), nil
}

// ReadXLSX parses a workbook produced by XLSX back into rows.
func ReadXLSX(data []byte) ([]domain.QuizRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	defer f.Close()

	records, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read xlsx: missing header")
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	rows := make([]domain.QuizRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		row, err := fromRecord(rec, i+2)
		if err != nil {
			return nil, fmt.Errorf("read xlsx: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
