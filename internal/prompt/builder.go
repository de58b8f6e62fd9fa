// Package prompt renders the instruction sent to the language model.
//
// The block grammar in the template is the contract the parser package depends on;
// change both together.
package prompt

import (
	"fmt"

	"quizsheet/internal/domain"
)

// Block markers and field labels of the reply grammar.
const (
	BlockStart     = "[질문시작]"
	BlockEnd       = "[질문끝]"
	BlockSeparator = "---"

	LabelQuestion  = "질문"
	LabelOption    = "보기"
	LabelCorrect   = "정답번호"
	LabelTimeLimit = "시간제한"
)

var difficultyInstructions = map[domain.Difficulty]string{
	domain.DifficultyUnset:  "",
	domain.DifficultyEasy:   "질문과 보기는 명확하고 이해하기 쉽게 작성해주세요. 기본적인 내용을 확인하는 질문 위주로 생성해주세요.",
	domain.DifficultyMedium: "질문은 내용에 대한 이해를 바탕으로 약간의 추론이나 분석을 요구할 수 있습니다. 너무 단순하거나 너무 복잡하지 않은 중간 수준의 질문을 생성해주세요.",
	domain.DifficultyHard:   "질문은 내용에 대한 깊이 있는 이해와 비판적 사고, 복합적인 분석 능력을 요구해야 합니다. 여러 정보를 종합하거나 숨겨진 의미를 파악해야 하는 질문을 생성해주세요.",
}

const generalAudienceInstruction = "대상은 일반적인 수준의 사용자입니다. 특정 학년에 치우치지 않는 보편적인 어휘와 내용을 사용해주세요."

// DifficultyInstruction returns the canned fragment for d; unset yields "".
func DifficultyInstruction(d domain.Difficulty) string {
	return difficultyInstructions[d]
}

// GradeLevelInstruction returns the audience fragment for g.
func GradeLevelInstruction(g domain.GradeLevel) string {
	if g == domain.GradeUnset || !g.Valid() {
		return generalAudienceInstruction
	}
	return fmt.Sprintf("대상 학년 수준은 '%s'입니다. 해당 수준의 어휘와 배경지식을 고려하여 질문과 보기를 작성해주세요.", g.Label())
}

const template = `당신은 Blooket 게임용 퀴즈를 만드는 전문가입니다. 다음 내용을 바탕으로 객관식 퀴즈 %[1]d개를 만들어 주세요.
각 퀴즈는 다음 형식을 반드시 따라야 하며, 각 항목은 다음 줄로 구분해주세요:

%[3]s
%[5]s: [여기에 질문 내용]
%[6]s1: [여기에 첫 번째 보기]
%[6]s2: [여기에 두 번째 보기]
%[6]s3: [여기에 세 번째 보기]
%[6]s4: [여기에 네 번째 보기]
%[7]s: [1, 2, 3, 또는 4 중 하나]
%[8]s: %[2]d
%[4]s

%[9]s
[중요 규칙]
1. "%[7]s:" 다음에는 반드시 1, 2, 3, 4 중 하나의 숫자만 적어주세요. 이 숫자는 정답에 해당하는 보기의 번호입니다.
2. 각 퀴즈는 "%[3]s"으로 시작하고 "%[4]s"으로 끝나야 합니다.
3. 퀴즈와 퀴즈 사이에는 "%[9]s" 구분선을 넣어주세요. (마지막 퀴즈 뒤에는 넣지 않아도 됩니다.)
4. 모든 질문의 "%[8]s:"은 %[2]d초로 고정해주세요.
5. 보기는 서로 다른 내용이어야 합니다.
6. 제공된 내용과 관련된 질문과 보기만 생성해주세요.

[퀴즈 내용 지침]
- 제공된 내용의 **핵심 개념, 주요 아이디어, 중요한 사실, 인물, 사건, 용어의 정의, 핵심 표현**을 중심으로 질문을 만들어주세요.
- 학습자가 **반드시 알아야 할 내용**이나 **이해도를 평가할 수 있는 내용**을 질문으로 만들어주세요.
- 내용의 **의미를 이해하고 적용하는 능력**을 평가할 수 있는 질문을 포함해주세요.
- **단순히 페이지 번호, 문서의 특정 위치, 목차, 또는 매우 지엽적이거나 사소한 세부 정보에 대한 질문은 반드시 피해주세요.**
- 질문은 내용에 대한 **깊이 있는 이해**를 요구해야 하며, 단순 암기나 표면적인 정보 확인에 그쳐서는 안 됩니다.

[난이도 및 학년 수준 지침]
- %[10]s
- %[11]s
%[9]s

내용:
%[12]s
`

// Build renders the full instruction for one run. It has no side effects.
func Build(content string, opts domain.GenerationOptions) string {
	return fmt.Sprintf(template,
		opts.QuestionCount,
		opts.TimeLimit,
		BlockStart,
		BlockEnd,
		LabelQuestion,
		LabelOption,
		LabelCorrect,
		LabelTimeLimit,
		BlockSeparator,
		GradeLevelInstruction(opts.GradeLevel),
		DifficultyInstruction(opts.Difficulty),
		content,
	)
}
