package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizsheet/internal/domain"
)

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", domain.ValidationErrors{domain.NewMissingFieldError("url")}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"extraction", domain.NewExtractionError(domain.CodeTranscriptDisabled, "subtitles are disabled", nil), http.StatusUnprocessableEntity, "TRANSCRIPT_DISABLED"},
		{"no rows", domain.NewNoRowsError(), http.StatusUnprocessableEntity, "NO_ROWS"},
		{"model", domain.NewLLMServiceError(errors.New("boom")), http.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{"not found", domain.NewNotFoundError("gone"), http.StatusNotFound, "NOT_FOUND"},
		{"fiber", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"body too large", fiber.ErrRequestEntityTooLarge, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE"},
		{"unknown", errors.New("???"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}
