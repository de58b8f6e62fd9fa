package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizsheet/internal/domain"
	"quizsheet/internal/dto"
	"quizsheet/internal/emitter"
	"quizsheet/internal/logger"
	"quizsheet/internal/middleware"
	"quizsheet/internal/service"
	"quizsheet/internal/validation"
)

// QuizHandler handles quiz generation and download requests
type QuizHandler struct {
	pipeline  service.QuizPipelineService
	store     service.ResultStore
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(pipeline service.QuizPipelineService, store service.ResultStore, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		pipeline:  pipeline,
		store:     store,
		validator: validator,
	}
}

// GenerateQuiz godoc
// @Summary Generate a Blooket quiz
// @Description Extracts text from the source, asks the model for questions and renders CSV/XLSX tables.
// @Description Send JSON for text, youtube and website sources; send multipart/form-data with a "file" field for pdf.
// @Tags quiz
// @Accept json,mpfd
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation request"
// @Success 201 {object} dto.GenerateQuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body could not be parsed").WithContext("error", err.Error())
	}

	src, opts, errs := h.validator.ValidateGenerateRequest(req)
	if len(errs) > 0 {
		return errs
	}

	if src.Kind == domain.SourcePDF {
		closeFile, err := h.attachPDF(c, &src)
		if err != nil {
			return err
		}
		defer closeFile()
	}

	result, err := h.pipeline.Generate(c.UserContext(), service.GenerateRequest{Source: src, Options: opts})
	if err != nil {
		return err
	}
	if result.Empty() {
		return domain.NewNoRowsError().
			WithContext("id", result.ID).
			WithContext("warnings", result.Warnings).
			WithContext("raw_response", result.RawResponse)
	}

	resp := dto.GenerateQuizResponse{
		ID:            result.ID,
		FileBase:      result.FileBase,
		Questions:     dto.NewQuizRowResponses(result.Rows),
		Warnings:      result.Warnings,
		ContentLength: result.ContentLength,
		Preview:       result.Preview,
		RawResponse:   result.RawResponse,
		Instructions:  emitter.ImportInstructions(),
		GeneratedBy:   h.pipeline.GeneratorName(),
		DurationMs:    result.Duration.Milliseconds(),
	}

	if err := h.store.Put(c.UserContext(), result); err != nil {
		logger.Get().Warn("Falling back to inline files", zap.String("id", result.ID), zap.Error(err))
	}
	if h.store.Enabled() {
		if meta, err := h.store.Get(c.UserContext(), result.ID); err == nil {
			links := downloadLinks(c, result.ID)
			resp.Downloads = &links
			resp.ExpiresInSeconds = int(meta.ExpiresIn / time.Second)
		}
	}
	if resp.Downloads == nil {
		resp.CSV = result.CSV
		resp.XLSX = result.XLSX
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// attachPDF reads the uploaded "file" field into src.
func (h *QuizHandler) attachPDF(c *fiber.Ctx, src *domain.Source) (func(), error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	var f multipart.File
	if f, err = fh.Open(); err != nil {
		return nil, domain.NewInternalError("failed to open uploaded file", err)
	}
	src.PDF = f
	src.PDFSize = fh.Size
	src.FileName = fh.Filename
	if errs := src.Validate(); len(errs) > 0 {
		_ = f.Close()
		return nil, errs
	}
	return func() { _ = f.Close() }, nil
}

// GetQuizResult godoc
// @Summary Get a generated quiz
// @Description Returns the questions and download links of an earlier run while it is still stored.
// @Tags quiz
// @Produce json
// @Param id path string true "Run ID (ULID)"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuizResult(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalResultID).(string)

	meta, err := h.store.Get(c.UserContext(), id)
	if err != nil {
		return notFoundOr(err, id)
	}
	return c.JSON(dto.QuizResultResponse{
		ID:               meta.ID,
		FileBase:         meta.FileBase,
		Questions:        dto.NewQuizRowResponses(meta.Rows),
		Warnings:         meta.Warnings,
		Downloads:        downloadLinks(c, meta.ID),
		ExpiresInSeconds: int(meta.ExpiresIn / time.Second),
	})
}

// DownloadQuiz godoc
// @Summary Download a generated quiz table
// @Description Returns the CSV (UTF-8 with BOM) or XLSX ("Blooket Quiz" sheet) file of a run.
// @Tags quiz
// @Produce octet-stream
// @Param id path string true "Run ID (ULID)"
// @Param format path string true "csv or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/{format} [get]
func (h *QuizHandler) DownloadQuiz(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalResultID).(string)
	format, _ := c.Locals(middleware.LocalFormat).(emitter.Format)

	file, err := h.store.GetFile(c.UserContext(), id, format)
	if err != nil {
		return notFoundOr(err, id)
	}

	// Attachment guesses a type from the extension; ours carries the charset.
	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Data)
}

// GetOptions godoc
// @Summary List generation options
// @Description Returns accepted source types, difficulties, grade levels, bounds and output columns.
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Router /options [get]
func (h *QuizHandler) GetOptions(c *fiber.Ctx) error {
	defaults := h.validator.Defaults()
	resp := dto.OptionsResponse{
		SourceTypes: []string{
			string(domain.SourceText), string(domain.SourcePDF),
			string(domain.SourceYouTube), string(domain.SourceWebsite),
		},
		QuestionCount: dto.Range{Min: domain.MinQuestionCount, Max: domain.MaxQuestionCount, Default: defaults.QuestionCount},
		TimeLimit:     dto.Range{Min: domain.MinTimeLimit, Max: domain.MaxTimeLimit, Default: defaults.TimeLimit},
		Columns:       emitter.Headers,
	}
	for _, d := range domain.Difficulties() {
		resp.Difficulties = append(resp.Difficulties, dto.OptionItem{ID: string(d), Label: d.Label()})
	}
	for _, g := range domain.GradeLevels() {
		resp.GradeLevels = append(resp.GradeLevels, dto.OptionItem{ID: string(g), Label: g.Label()})
	}
	return c.JSON(resp)
}

func downloadLinks(c *fiber.Ctx, id string) dto.DownloadLinks {
	base := fmt.Sprintf("%s/api/quizzes/%s", c.BaseURL(), id)
	return dto.DownloadLinks{CSV: base + "/csv", XLSX: base + "/xlsx"}
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, service.ErrResultNotFound) {
		return domain.NewNotFoundError("quiz result not found or expired").WithContext("id", id)
	}
	return err
}
