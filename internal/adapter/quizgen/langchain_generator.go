package quizgen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"
)

// Options tune a single model call.
type Options struct {
	Temperature float64
	Timeout     time.Duration
}

// LangchainGenerator sends prompts to any langchaingo model (Gemini, Ollama, OpenAI).
type LangchainGenerator struct {
	model llms.Model
	name  string
	opts  Options
}

// NewLangchainGenerator wraps model. name is used in logs and health output.
func NewLangchainGenerator(model llms.Model, name string, opts Options) *LangchainGenerator {
	return &LangchainGenerator{model: model, name: name, opts: opts}
}

func (g *LangchainGenerator) Name() string { return g.name }

// GenerateQuizText implements domain.QuizTextGenerator.
func (g *LangchainGenerator) GenerateQuizText(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()
	l.Info("Requesting quiz text from model",
		zap.String("provider", g.name),
		zap.Int("prompt_length", len(prompt)))

	reply, err := g.callLLM(ctx, prompt)
	if err != nil {
		l.Error("Model call failed", zap.String("provider", g.name), zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	reply = CleanReply(reply)
	if reply == "" {
		l.Warn("Model returned an empty reply", zap.String("provider", g.name))
		return "", domain.NewLLMServiceError(errors.New("empty reply from model"))
	}

	l.Debug("Raw model reply received", zap.Int("reply_length", len(reply)))
	return reply, nil
}

func (g *LangchainGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	callOpts := []llms.CallOption{}
	if g.opts.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(g.opts.Temperature))
	}

	response, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, callOpts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("model request timed out after %s: %w", g.opts.Timeout, err)
		}
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return response, nil
}

var _ domain.QuizTextGenerator = (*LangchainGenerator)(nil)
