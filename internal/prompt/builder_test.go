package prompt

import (
	"strings"
	"testing"

	"quizsheet/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	opts := domain.GenerationOptions{
		QuestionCount: 7,
		TimeLimit:     45,
		Difficulty:    domain.DifficultyHard,
		GradeLevel:    domain.GradeMiddle2,
	}
	content := "The capital of France is Paris."

	got := Build(content, opts)

	assert.Contains(t, got, "객관식 퀴즈 7개")
	assert.Contains(t, got, "시간제한: 45\n")
	assert.Contains(t, got, "45초로 고정")
	assert.Contains(t, got, "[질문시작]\n질문: ")
	assert.Contains(t, got, "보기4: ")
	assert.Contains(t, got, "정답번호: ")
	assert.Contains(t, got, "[질문끝]")
	assert.Contains(t, got, DifficultyInstruction(domain.DifficultyHard))
	assert.Contains(t, got, "'중학교 2학년'")
	assert.True(t, strings.HasSuffix(got, "내용:\n"+content+"\n"))
	assert.NotContains(t, got, "%!")

	assert.Equal(t, got, Build(content, opts), "Build must be deterministic")
}

func TestBuild_UnsetOptions(t *testing.T) {
	got := Build("body", domain.GenerationOptions{QuestionCount: 1, TimeLimit: 20})

	assert.Contains(t, got, generalAudienceInstruction)
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		assert.NotContains(t, got, DifficultyInstruction(d))
	}
}

func TestInstructions(t *testing.T) {
	assert.Empty(t, DifficultyInstruction(domain.DifficultyUnset))
	for _, d := range domain.Difficulties()[1:] {
		assert.NotEmpty(t, DifficultyInstruction(d), d)
	}
	for _, g := range domain.GradeLevels()[1:] {
		assert.Contains(t, GradeLevelInstruction(g), g.Label())
	}
	assert.Equal(t, generalAudienceInstruction, GradeLevelInstruction(domain.GradeUnset))
}
