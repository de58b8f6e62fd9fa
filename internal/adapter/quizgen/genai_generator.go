package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"quizsheet/internal/domain"
	"quizsheet/internal/logger"
)

// GenAIGenerator calls Gemini through Google's generative-ai-go SDK.
type GenAIGenerator struct {
	apiKey string
	model  string
	opts   Options

	// generate is replaced in tests.
	generate func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)
}

func NewGenAIGenerator(apiKey, model string, opts Options) (*GenAIGenerator, error) {
	apiKey = strings.TrimSpace(apiKey)
	model = strings.TrimSpace(model)
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}
	g := &GenAIGenerator{apiKey: apiKey, model: model, opts: opts}
	g.generate = g.generateContent
	return g, nil
}

func (g *GenAIGenerator) Name() string { return "genai:" + g.model }

// GenerateQuizText implements domain.QuizTextGenerator.
func (g *GenAIGenerator) GenerateQuizText(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	resp, err := g.generate(ctx, prompt)
	if err != nil {
		l.Error("Gemini request failed", zap.String("model", g.model), zap.Error(err))
		return "", domain.NewLLMServiceError(err)
	}

	reply := CleanReply(firstText(resp))
	if reply == "" {
		l.Warn("Gemini returned no text", zap.String("model", g.model))
		return "", domain.NewLLMServiceError(errors.New("empty reply from model"))
	}
	return reply, nil
}

func (g *GenAIGenerator) generateContent(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(g.model)
	if g.opts.Temperature > 0 {
		m.GenerationConfig = genai.GenerationConfig{
			Temperature: ptrFloat32(float32(g.opts.Temperature)),
		}
	}
	return m.GenerateContent(ctx, genai.Text(prompt))
}

// firstText concatenates the text parts of the first candidate that has any.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }

var _ domain.QuizTextGenerator = (*GenAIGenerator)(nil)
