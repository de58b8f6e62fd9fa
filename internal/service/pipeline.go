package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quizsheet/internal/domain"
	"quizsheet/internal/emitter"
	"quizsheet/internal/extractor"
	"quizsheet/internal/logger"
	"quizsheet/internal/parser"
	"quizsheet/internal/prompt"
	"quizsheet/internal/util"
)

// PreviewRunes is how much extracted content a result echoes back.
const PreviewRunes = 2000

// ContentExtractor turns a Source into plain text.
type ContentExtractor interface {
	Extract(ctx context.Context, src domain.Source) (string, error)
}

type GenerateRequest struct {
	Source  domain.Source
	Options domain.GenerationOptions
}

// GenerateResult is everything one pipeline run produced. When Rows is empty
// the run failed from the user's point of view; Warnings says why and no
// files are rendered.
type GenerateResult struct {
	ID            string
	Rows          []domain.QuizRow
	Warnings      []domain.ParseWarning
	Preview       string
	ContentLength int
	RawResponse   string
	FileBase      string
	CSV           []byte
	XLSX          []byte
	Duration      time.Duration
}

func (r *GenerateResult) Empty() bool { return len(r.Rows) == 0 }

// File returns the rendered bytes for f, or nil when nothing was rendered.
func (r *GenerateResult) File(f emitter.Format) []byte {
	switch f {
	case emitter.FormatCSV:
		return r.CSV
	case emitter.FormatXLSX:
		return r.XLSX
	}
	return nil
}

// QuizPipelineService runs extract -> prompt -> model -> parse -> render.
type QuizPipelineService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	GeneratorName() string
}

type quizPipelineService struct {
	extractor ContentExtractor
	generator domain.QuizTextGenerator
}

// NewQuizPipelineService creates a stateless pipeline; concurrent runs share nothing mutable.
func NewQuizPipelineService(extractor ContentExtractor, generator domain.QuizTextGenerator) QuizPipelineService {
	return &quizPipelineService{extractor: extractor, generator: generator}
}

func (s *quizPipelineService) GeneratorName() string { return s.generator.Name() }

// Generate implements QuizPipelineService.
func (s *quizPipelineService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	l := logger.Get()
	started := time.Now()

	errs := req.Options.Validate()
	errs = append(errs, req.Source.Validate()...)
	if len(errs) > 0 {
		return nil, errs
	}

	result := &GenerateResult{
		ID:       util.NewULID(),
		FileBase: util.QuizFileBase(req.Source, req.Options),
	}
	l = l.With(zap.String("run_id", result.ID), zap.Stringer("source", req.Source))

	// the extractor logs its own outcome
	content, err := s.extractor.Extract(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	result.ContentLength = len([]rune(content))
	result.Preview = extractor.Preview(content, PreviewRunes)

	reply, err := s.generator.GenerateQuizText(ctx, prompt.Build(content, req.Options))
	if err != nil {
		return nil, err
	}
	result.RawResponse = reply

	parsed := parser.Parse(reply, req.Options.TimeLimit)
	result.Rows = parsed.Rows
	result.Warnings = parsed.Warnings
	for _, w := range parsed.Warnings {
		l.Warn("Discarded quiz block", zap.String("reason", w.Reason), zap.String("block", w.Block))
	}

	if parsed.Empty() {
		result.Duration = time.Since(started)
		l.Warn("Model reply produced no usable questions", zap.Int("blocks", parsed.Blocks))
		return result, nil
	}
	if len(parsed.Rows) != req.Options.QuestionCount {
		l.Info("Question count differs from request",
			zap.Int("requested", req.Options.QuestionCount),
			zap.Int("accepted", len(parsed.Rows)))
	}

	if result.CSV, err = emitter.CSV(parsed.Rows); err != nil {
		return nil, err
	}
	if result.XLSX, err = emitter.XLSX(parsed.Rows); err != nil {
		return nil, err
	}

	result.Duration = time.Since(started)
	l.Info("Quiz generated",
		zap.Int("rows", len(result.Rows)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("duration", result.Duration))
	return result, nil
}
