package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/coinquest/core/internal/models"
	"github.com/coinquest/core/internal/modules/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(context.Context, string, string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type stubLedger struct {
	credited map[string]int
}

func (l *stubLedger) CreditCoins(_ context.Context, userID string, amount int) (*models.ProfileModel, error) {
	if l.credited == nil {
		l.credited = make(map[string]int)
	}
	l.credited[userID] += amount
	return &models.ProfileModel{ID: userID, Coins: 100 + l.credited[userID]}, nil
}

func modelQuizReply(t *testing.T) string {
	t.Helper()
	questions := make([]Question, quizQuestionCount)
	for i := range questions {
		questions[i] = Question{
			Question:     fmt.Sprintf("Question %d?", i+1),
			Choices:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % 4,
			Explanation:  "Because.",
		}
	}
	payload, err := json.Marshal(map[string]interface{}{"questions": questions})
	require.NoError(t, err)
	return string(payload)
}

func TestGenerateServesFallbackWhenGenerationUnavailable(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("%w: dial tcp refused", ai.ErrGenerationUnavailable)}
	svc := NewService(NewMemoryStore(), gen, &stubLedger{}, zap.NewNop())

	quizID, quiz, views, err := svc.Generate(context.Background(), "", GenerateRequest{AgeRange: "12-15", Difficulty: "medium"})
	require.NoError(t, err)
	assert.NotEmpty(t, quizID)
	require.Len(t, views, quizQuestionCount)
	require.Len(t, quiz.Questions, quizQuestionCount)

	for i, q := range quiz.Questions {
		assert.NotEmpty(t, q.ID, i)
		assert.NotEmpty(t, q.Question, i)
		assert.Len(t, q.Choices, 4, i)
		assert.GreaterOrEqual(t, q.CorrectIndex, 0, i)
		assert.Less(t, q.CorrectIndex, 4, i)
	}
}

func TestGenerateServesFallbackOnMalformedOutput(t *testing.T) {
	gen := &stubGenerator{reply: `{"questions": [{"question": "only one?", "choices": ["a","b","c","d"], "correctIndex": 0}]}`}
	svc := NewService(NewMemoryStore(), gen, &stubLedger{}, zap.NewNop())

	_, quiz, _, err := svc.Generate(context.Background(), "", GenerateRequest{AgeRange: "8-11"})
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, quizQuestionCount)
	assert.Equal(t, "easy", quiz.Difficulty)
}

func TestGenerateUsesModelQuestionsWhenValid(t *testing.T) {
	gen := &stubGenerator{reply: modelQuizReply(t)}
	svc := NewService(NewMemoryStore(), gen, &stubLedger{}, zap.NewNop())

	_, quiz, views, err := svc.Generate(context.Background(), "user-1", GenerateRequest{AgeRange: "16-18", Topic: "Saving", Difficulty: "hard"})
	require.NoError(t, err)
	assert.Equal(t, "Saving", quiz.Topic)
	assert.Equal(t, "Question 1?", quiz.Questions[0].Question)
	assert.Equal(t, "q1", views[0].ID)
}

func TestSubmitPerfectScore(t *testing.T) {
	store := NewMemoryStore()
	ledger := &stubLedger{}
	svc := NewService(store, &stubGenerator{err: errors.New("unused")}, ledger, zap.NewNop())

	questions := fallbackQuestions("easy")
	assignQuestionIDs(questions)
	require.NoError(t, store.Put(context.Background(), "quiz-1", StoredQuiz{UserID: "user-1", Questions: questions}))

	answers := make([]Answer, len(questions))
	for i, q := range questions {
		answers[i] = Answer{QuestionID: q.ID, ChosenIndex: q.CorrectIndex}
	}

	result, err := svc.Submit(context.Background(), "user-1", SubmitRequest{QuizID: "quiz-1", Answers: answers})
	require.NoError(t, err)
	assert.Equal(t, len(questions), result.Score)
	assert.Equal(t, len(questions), result.Total)
	assert.Equal(t, len(questions)*5, result.CoinsEarned)
	assert.Equal(t, "Perfect! Great job.", result.Feedback)
	assert.Equal(t, len(questions)*5, ledger.credited["user-1"])
	require.NotNil(t, result.Coins)

	// Scoring consumed the quiz.
	_, err = svc.Submit(context.Background(), "user-1", SubmitRequest{QuizID: "quiz-1", Answers: answers})
	assert.True(t, errors.Is(err, ErrQuizNotFound))
}

func TestSubmitZeroCorrectStillEarnsMinimum(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, &stubGenerator{}, &stubLedger{}, zap.NewNop())

	questions := fallbackQuestions("easy")
	assignQuestionIDs(questions)
	require.NoError(t, store.Put(context.Background(), "quiz-2", StoredQuiz{Questions: questions}))

	result, err := svc.Submit(context.Background(), "", SubmitRequest{QuizID: "quiz-2", Answers: nil})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, 5, result.CoinsEarned)
	assert.Nil(t, result.Coins)
}

func TestSubmitRejectsOtherUsersQuiz(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, &stubGenerator{}, &stubLedger{}, zap.NewNop())

	questions := fallbackQuestions("easy")
	assignQuestionIDs(questions)
	require.NoError(t, store.Put(context.Background(), "quiz-3", StoredQuiz{UserID: "alice", Questions: questions}))

	_, err := svc.Submit(context.Background(), "bob", SubmitRequest{QuizID: "quiz-3"})
	assert.True(t, errors.Is(err, ErrQuizNotFound))
}

func TestResolveTopic(t *testing.T) {
	assert.Equal(t, "Budgeting", resolveTopic(""))
	assert.Equal(t, "Budgeting", resolveTopic("Surprise me"))
	assert.Equal(t, "Saving", resolveTopic("Saving"))
}
