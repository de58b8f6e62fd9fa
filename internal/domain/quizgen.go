package domain

import "context"

// QuizTextGenerator sends a prompt to a language model and returns its raw reply.
// Implementations live in internal/adapter/quizgen.
type QuizTextGenerator interface {
	GenerateQuizText(ctx context.Context, prompt string) (string, error)
	// Name identifies the provider and model in logs.
	Name() string
}
