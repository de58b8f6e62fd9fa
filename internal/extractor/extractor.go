package extractor

import (
	"context"
	"net/http"
	"strings"
	"time"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"go.uber.org/zap"
)

// Options tune the network-backed extractors.
type Options struct {
	WebsiteTimeout     time.Duration
	TranscriptTimeout  time.Duration
	UserAgent          string
	PreferredLanguages []string
}

// Extractor normalizes any supported Source into plain text.
type Extractor struct {
	transcripts domain.TranscriptProvider
	httpClient  *http.Client
	opts        Options
}

// New creates an Extractor. transcripts may be nil when video sources are not needed.
func New(transcripts domain.TranscriptProvider, opts Options) *Extractor {
	if opts.WebsiteTimeout <= 0 {
		opts.WebsiteTimeout = 10 * time.Second
	}
	if len(opts.PreferredLanguages) == 0 {
		opts.PreferredLanguages = []string{"ko", "en"}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Extractor{
		transcripts: transcripts,
		httpClient:  &http.Client{Timeout: opts.WebsiteTimeout},
		opts:        opts,
	}
}

// Extract dispatches on src.Kind. Every failure is a DomainError from the extraction family.
func (e *Extractor) Extract(ctx context.Context, src domain.Source) (string, error) {
	l := logger.Get()
	start := time.Now()

	var (
		text string
		err  error
	)
	switch src.Kind {
	case domain.SourceText:
		text, err = ExtractText(src.Text)
	case domain.SourcePDF:
		text, err = ExtractPDF(src.PDF, src.PDFSize)
	case domain.SourceYouTube:
		text, err = e.ExtractVideo(ctx, src.URL)
	case domain.SourceWebsite:
		text, err = e.ExtractWebsite(ctx, src.URL)
	default:
		err = domain.NewExtractionError(domain.CodeExtractionFailed, "unsupported source type: "+string(src.Kind), nil)
	}
	if err != nil {
		l.Warn("Content extraction failed",
			zap.String("source", src.String()),
			zap.String("code", string(domain.CodeOf(err))),
			zap.Error(err))
		return "", err
	}

	l.Info("Content extracted",
		zap.String("source", src.String()),
		zap.Int("chars", len([]rune(text))),
		zap.Duration("duration", time.Since(start)))
	return text, nil
}

// ExtractText passes pasted text through unchanged.
func ExtractText(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", domain.NewExtractionError(domain.CodeEmptyContent, "source text is empty", nil)
	}
	return raw, nil
}

// Preview returns the first max runes of text, with "..." appended when it was cut.
func Preview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
