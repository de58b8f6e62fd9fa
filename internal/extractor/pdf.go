package extractor

import (
	"fmt"
	"io"
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// ExtractPDF concatenates the text of every page in order.
// A page that yields no text contributes an empty string; only an unreadable file is an error.
func ExtractPDF(r io.ReaderAt, size int64) (text string, err error) {
	if r == nil || size <= 0 {
		return "", domain.NewExtractionError(domain.CodePDFUnreadable, "pdf file is empty", nil)
	}

	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = domain.NewExtractionError(domain.CodePDFUnreadable, "failed to read pdf", fmt.Errorf("%v", rec))
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", domain.NewExtractionError(domain.CodePDFUnreadable, "failed to read pdf", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		sb.WriteString(pageText(reader, i))
	}

	logger.Get().Debug("PDF pages read", zap.Int("pages", numPages), zap.Int("chars", sb.Len()))
	return sb.String(), nil
}

func pageText(reader *pdf.Reader, num int) (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Get().Warn("PDF page extraction panicked", zap.Int("page", num), zap.Any("panic", rec))
			text = ""
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return ""
	}
	content, err := page.GetPlainText(nil)
	if err != nil {
		logger.Get().Warn("PDF page has no extractable text", zap.Int("page", num), zap.Error(err))
		return ""
	}
	return content
}
