package quiz

import (
	"fmt"

	"github.com/coinquest/core/internal/modules/docs"
)

const quizQuestionCount = 10

const quizSystemPrompt = `Role: Financial literacy quiz writer for youth.

IMPORTANT: Output MUST be valid JSON only.
ABSOLUTE: DO NOT wrap the JSON in markdown/code fences.

## Task
Write multiple-choice questions about everyday money skills for the given
audience, topic and difficulty.

## Requirements (negative-first)
- NEVER reference real companies, brands, or people
- NEVER use trick questions or ambiguous wording
- DO NOT add commentary, markdown, or extra keys
- Exactly %d questions, each with exactly 4 choices
- correctIndex is the 0-based index of the right choice
- Each explanation is one short sentence a young reader understands
- Amounts stay small and friendly (coins, allowance, pocket money)

## Output JSON Format
{"questions":[{"question":"...","choices":["...","...","...","..."],"correctIndex":0,"explanation":"..."}]}

## Input Format
AUDIENCE: style level
STYLE_RULES: one rule per line
TOPIC: quiz topic
DIFFICULTY: easy | medium | hard`

func quizSystemPromptText() string {
	return fmt.Sprintf(quizSystemPrompt, quizQuestionCount)
}

func buildQuizPrompt(style docs.Style, topic, difficulty string) string {
	rules := ""
	for _, rule := range style.Rules {
		rules += "- " + rule + "\n"
	}
	return fmt.Sprintf(`AUDIENCE: %s
STYLE_RULES:
%sTOPIC: %s
DIFFICULTY: %s`, style.Level, rules, topic, difficulty)
}
