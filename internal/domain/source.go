package domain

import (
	"fmt"
	"io"
	"strings"
)

// SourceKind selects how the Content Extractor reads a Source.
type SourceKind string

const (
	SourceText    SourceKind = "text"
	SourcePDF     SourceKind = "pdf"
	SourceYouTube SourceKind = "youtube"
	SourceWebsite SourceKind = "website"
)

func ParseSourceKind(s string) (SourceKind, bool) {
	switch k := SourceKind(strings.ToLower(strings.TrimSpace(s))); k {
	case SourceText, SourcePDF, SourceYouTube, SourceWebsite:
		return k, true
	}
	return "", false
}

// Source is one piece of user input awaiting extraction.
//
// Text is used by SourceText, URL by SourceYouTube and SourceWebsite,
// and PDF/PDFSize/FileName by SourcePDF.
type Source struct {
	Kind     SourceKind
	Text     string
	URL      string
	PDF      io.ReaderAt
	PDFSize  int64
	FileName string
}

// Validate checks that the field required by Kind is set.
func (s Source) Validate() ValidationErrors {
	var errs ValidationErrors
	switch s.Kind {
	case SourceText:
		if strings.TrimSpace(s.Text) == "" {
			errs = append(errs, NewMissingFieldError("text"))
		}
	case SourceYouTube, SourceWebsite:
		if strings.TrimSpace(s.URL) == "" {
			errs = append(errs, NewMissingFieldError("url"))
		}
	case SourcePDF:
		if s.PDF == nil || s.PDFSize <= 0 {
			errs = append(errs, NewMissingFieldError("file"))
		}
	default:
		errs = append(errs, NewInvalidFormatError("source_type", string(s.Kind)))
	}
	return errs
}

func (s Source) String() string {
	switch s.Kind {
	case SourcePDF:
		return fmt.Sprintf("pdf(%s, %d bytes)", s.FileName, s.PDFSize)
	case SourceYouTube, SourceWebsite:
		return fmt.Sprintf("%s(%s)", s.Kind, s.URL)
	default:
		return fmt.Sprintf("%s(%d chars)", s.Kind, len(s.Text))
	}
}
