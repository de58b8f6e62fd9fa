package quizgen

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"quizsheet/internal/config"
	"quizsheet/internal/domain"
	"quizsheet/internal/logger"
)

// New builds the generator selected by cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig) (domain.QuizTextGenerator, error) {
	opts := Options{Temperature: cfg.Temperature, Timeout: cfg.Timeout}
	logger.Get().Info("Initializing quiz generator",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))

	switch cfg.Provider {
	case "genai":
		return NewGenAIGenerator(cfg.APIKey, cfg.Model, opts)
	case "googleai":
		llm, err := googleai.New(ctx,
			googleai.WithAPIKey(cfg.APIKey),
			googleai.WithDefaultModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google AI client: %w", err)
		}
		return NewLangchainGenerator(llm, "googleai:"+cfg.Model, opts), nil
	case "ollama":
		llm, err := ollama.New(
			ollama.WithModel(cfg.Model),
			ollama.WithServerURL(cfg.ServerURL),
			ollama.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
		return NewLangchainGenerator(llm, "ollama:"+cfg.Model, opts), nil
	case "openai":
		llm, err := openai.New(
			openai.WithToken(cfg.APIKey),
			openai.WithModel(cfg.Model),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
		}
		return NewLangchainGenerator(llm, "openai:"+cfg.Model, opts), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
