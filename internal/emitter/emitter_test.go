package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quizsheet/internal/domain"
)

func sampleRows() []domain.QuizRow {
	return []domain.QuizRow{
		{
			Number:    1,
			Question:  "프랑스의 수도는?",
			Answers:   [4]string{"파리", "런던", "베를린", "마드리드"},
			TimeLimit: 20,
			Correct:   1,
		},
		{
			Number:    2,
			Question:  `Which, "quoted", answer?`,
			Answers:   [4]string{"a,b", "c\nd", "e", "f"},
			TimeLimit: 45,
			Correct:   4,
		},
	}
}

func TestCSV(t *testing.T) {
	data, err := CSV(sampleRows())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "CSV must start with a UTF-8 BOM")
	assert.Contains(t, string(data), "Question #,Question Text,Answer 1,Answer 2,Answer 3,Answer 4,Time Limit (sec),Correct Answer(s)\n")

	got, err := ReadCSV(data)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), got)
}

func TestXLSX(t *testing.T) {
	data, err := XLSX(sampleRows())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	got, err := ReadXLSX(data)
	require.NoError(t, err)
	assert.Equal(t, sampleRows(), got)
}

func TestEmit_NoRows(t *testing.T) {
	for name, fn := range map[string]func([]domain.QuizRow) ([]byte, error){"csv": CSV, "xlsx": XLSX} {
		t.Run(name, func(t *testing.T) {
			data, err := fn(nil)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.Equal(t, domain.CodeNoRows, domain.CodeOf(err))
		})
	}
}

func TestReadCSV_RejectsForeignHeader(t *testing.T) {
	_, err := ReadCSV([]byte("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat(" XLSX ")
	assert.True(t, ok)
	assert.Equal(t, FormatXLSX, f)
	assert.Equal(t, ".xlsx", f.Extension())

	_, ok = ParseFormat("pdf")
	assert.False(t, ok)

	_, err := Render(Format("pdf"), sampleRows())
	assert.Equal(t, domain.CodeInvalidInput, domain.CodeOf(err))
}
