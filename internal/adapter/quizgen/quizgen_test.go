package quizgen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"quizsheet/internal/config"
	"quizsheet/internal/domain"
)

// MockModel is a mock type for the llms.Model interface
type MockModel struct {
	mock.Mock
}

func (m *MockModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llms.ContentResponse), args.Error(1)
}

func (m *MockModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func reply(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func TestLangchainGenerator_GenerateQuizText(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.MatchedBy(func(msgs []llms.MessageContent) bool {
			return len(msgs) == 1 && msgs[0].Parts[0].(llms.TextContent).Text == "prompt"
		})).Return(reply("<think>plan</think>\n[질문시작]\n질문: Q\n[질문끝]"), nil)

		g := NewLangchainGenerator(m, "fake", Options{Temperature: 0.5, Timeout: time.Second})
		got, err := g.GenerateQuizText(ctx, "prompt")

		require.NoError(t, err)
		assert.Equal(t, "[질문시작]\n질문: Q\n[질문끝]", got)
		assert.Equal(t, "fake", g.Name())
		m.AssertExpectations(t)
	})

	t.Run("model error", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

		_, err := NewLangchainGenerator(m, "fake", Options{}).GenerateQuizText(ctx, "prompt")

		require.Error(t, err)
		assert.Equal(t, domain.CodeLLMServiceError, domain.CodeOf(err))
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("no choices", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.Anything).Return(&llms.ContentResponse{}, nil)

		_, err := NewLangchainGenerator(m, "fake", Options{}).GenerateQuizText(ctx, "prompt")
		assert.Equal(t, domain.CodeLLMServiceError, domain.CodeOf(err))
	})

	t.Run("blank reply", func(t *testing.T) {
		m := new(MockModel)
		m.On("GenerateContent", mock.Anything, mock.Anything).Return(reply("  \n"), nil)

		_, err := NewLangchainGenerator(m, "fake", Options{}).GenerateQuizText(ctx, "prompt")
		assert.Equal(t, domain.CodeLLMServiceError, domain.CodeOf(err))
	})
}

func TestGenAIGenerator_GenerateQuizText(t *testing.T) {
	g, err := NewGenAIGenerator("key", "gemini-test", Options{Timeout: time.Second})
	require.NoError(t, err)

	t.Run("joins text parts", func(t *testing.T) {
		g.generate = func(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("```\n[질문시작]"), genai.Text("[질문끝]\n```")}}},
			}}, nil
		}
		got, err := g.GenerateQuizText(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "[질문시작][질문끝]", got)
	})

	t.Run("empty candidates", func(t *testing.T) {
		g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		}
		_, err := g.GenerateQuizText(context.Background(), "p")
		assert.Equal(t, domain.CodeLLMServiceError, domain.CodeOf(err))
	})

	t.Run("request error", func(t *testing.T) {
		g.generate = func(context.Context, string) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("503")
		}
		_, err := g.GenerateQuizText(context.Background(), "p")
		assert.Equal(t, domain.CodeLLMServiceError, domain.CodeOf(err))
	})
}

func TestNewGenAIGenerator_Validation(t *testing.T) {
	_, err := NewGenAIGenerator(" ", "m", Options{})
	assert.Error(t, err)
	_, err = NewGenAIGenerator("k", "", Options{})
	assert.Error(t, err)
}

func TestNew_Providers(t *testing.T) {
	ctx := context.Background()

	g, err := New(ctx, config.LLMConfig{Provider: "genai", Model: "gemini-test", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "genai:gemini-test", g.Name())

	g, err = New(ctx, config.LLMConfig{Provider: "ollama", Model: "llama3", ServerURL: "http://localhost:11434"})
	require.NoError(t, err)
	assert.Equal(t, "ollama:llama3", g.Name())

	_, err = New(ctx, config.LLMConfig{Provider: "mystery"})
	assert.Error(t, err)
}

func TestCleanReply(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  plain  ", "plain"},
		{"<think>a</think>b<think>c</think>d", "bd"},
		{"```text\nbody\n```", "body"},
		{"<think>unterminated", "<think>unterminated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanReply(tt.in))
	}
}
