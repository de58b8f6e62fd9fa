package middleware

import (
	"errors"
	"net/http"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse lists every rejected field at once.
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:        http.StatusNotFound,
	domain.CodeInvalidInput:    http.StatusBadRequest,
	domain.CodeValidation:      http.StatusBadRequest,
	domain.CodeMissingField:    http.StatusBadRequest,
	domain.CodeInvalidFormat:   http.StatusBadRequest,
	domain.CodeOutOfRange:      http.StatusBadRequest,
	domain.CodeNoRows:          http.StatusUnprocessableEntity,
	domain.CodeLLMServiceError: http.StatusServiceUnavailable,
}

// ErrorHandler turns handler errors into JSON responses. Set it as
// fiber.Config.ErrorHandler.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Get().Warn("Request validation failed",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return writeDomainError(c, domainErr)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code := "HTTP_ERROR"
			if fiberErr.Code == fiber.StatusRequestEntityTooLarge {
				code = "PAYLOAD_TOO_LARGE"
			}
			logger.Get().Warn("HTTP error",
				zap.String("path", c.Path()),
				zap.Int("status", fiberErr.Code),
				zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(ErrorResponse{
				Code:    code,
				Message: fiberErr.Message,
				Status:  fiberErr.Code,
			})
		}

		logger.Get().Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		})
	}
}

func writeDomainError(c *fiber.Ctx, err *domain.DomainError) error {
	status := mapDomainErrorToHTTPStatus(err)

	fields := []zap.Field{
		zap.String("path", c.Path()),
		zap.String("code", string(err.Code)),
		zap.Int("status", status),
	}
	if err.Cause != nil {
		fields = append(fields, zap.Error(err.Cause))
	}
	if status >= http.StatusInternalServerError {
		logger.Get().Error(err.Message, fields...)
	} else {
		logger.Get().Warn(err.Message, fields...)
	}

	resp := ErrorResponse{
		Code:    string(err.Code),
		Message: err.Message,
		Status:  status,
	}
	if len(err.Context) > 0 {
		resp.Details = err.Context
	}
	return c.Status(status).JSON(resp)
}

// mapDomainErrorToHTTPStatus: extraction failures are the user's input (422),
// model failures are upstream (503).
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	if domain.IsExtractionError(err) {
		return http.StatusUnprocessableEntity
	}
	if status, ok := statusByCode[err.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
