package validation

import (
	"strings"

	"quizsheet/internal/domain"
	"quizsheet/internal/dto"
	"quizsheet/internal/emitter"
	"quizsheet/internal/util"
)

// Validator turns raw request values into domain inputs.
type Validator struct {
	defaults domain.GenerationOptions
}

// NewValidator fills omitted count and time limit from defaults.
func NewValidator(defaults domain.GenerationOptions) *Validator {
	return &Validator{defaults: defaults}
}

// Defaults returns the options used for omitted request values.
func (v *Validator) Defaults() domain.GenerationOptions { return v.defaults }

// ValidateGenerateRequest resolves enum strings and bounds. The returned
// Source has no PDF attached; handlers add the uploaded file.
func (v *Validator) ValidateGenerateRequest(req dto.GenerateQuizRequest) (domain.Source, domain.GenerationOptions, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	kind, kindOK := domain.ParseSourceKind(req.SourceType)
	if !kindOK {
		if strings.TrimSpace(req.SourceType) == "" {
			errs = append(errs, domain.NewMissingFieldError("source_type"))
		} else {
			errs = append(errs, domain.NewInvalidFormatError("source_type", req.SourceType))
		}
	}

	opts := v.defaults
	if req.QuestionCount != 0 {
		opts.QuestionCount = req.QuestionCount
	}
	if req.TimeLimit != 0 {
		opts.TimeLimit = req.TimeLimit
	}
	if d, ok := domain.ParseDifficulty(req.Difficulty); ok {
		opts.Difficulty = d
	} else {
		errs = append(errs, domain.NewInvalidFormatError("difficulty", req.Difficulty))
	}
	if g, ok := domain.ParseGradeLevel(req.GradeLevel); ok {
		opts.GradeLevel = g
	} else {
		errs = append(errs, domain.NewInvalidFormatError("grade_level", req.GradeLevel))
	}
	errs = append(errs, opts.Validate()...)

	src := domain.Source{
		Kind: kind,
		Text: req.Text,
		URL:  strings.TrimSpace(req.URL),
	}
	if kindOK && kind != domain.SourcePDF {
		errs = append(errs, src.Validate()...)
	}
	return src, opts, errs
}

// ValidateResultID checks the run id path parameter.
func (v *Validator) ValidateResultID(id string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(id) == "" {
		errs = append(errs, domain.NewMissingFieldError("id"))
	} else if !util.IsULID(id) {
		errs = append(errs, domain.NewInvalidFormatError("id", id))
	}
	return errs
}

// ValidateFormat checks a download format name.
func (v *Validator) ValidateFormat(format string) (emitter.Format, domain.ValidationErrors) {
	f, ok := emitter.ParseFormat(format)
	if !ok {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("format", format)}
	}
	return f, nil
}
