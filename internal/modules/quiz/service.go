package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/coinquest/core/internal/models"
	"github.com/coinquest/core/internal/modules/ai"
	"github.com/coinquest/core/internal/modules/docs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTopic = "Budgeting"

// Topics the quiz writer knows about. Free-text topics are allowed through;
// this list backs the UI picker.
var Topics = []string{"Saving", "Spending", "Budgeting", "Needs vs Wants", "Bills & Deadlines"}

// CoinLedger credits quiz rewards to a wallet.
type CoinLedger interface {
	CreditCoins(ctx context.Context, userID string, amount int) (*models.ProfileModel, error)
}

// Service generates, stores and scores quizzes. The stored copy is the only
// answer key; clients never see correctIndex before scoring.
type Service struct {
	store  QuizStore
	gen    docs.Generator
	ledger CoinLedger
	logger *zap.Logger
}

func NewService(store QuizStore, gen docs.Generator, ledger CoinLedger, logger *zap.Logger) *Service {
	return &Service{store: store, gen: gen, ledger: ledger, logger: logger}
}

// Generate builds a quiz and returns its id plus the answer-free question
// views. Generation failures fall back to the static bank, so this only
// errors on store failures or a bad age range.
func (s *Service) Generate(ctx context.Context, userID string, req GenerateRequest) (string, *StoredQuiz, []QuestionView, error) {
	style, err := docs.StyleFor(req.AgeRange)
	if err != nil {
		return "", nil, nil, err
	}

	topic := resolveTopic(req.Topic)
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "easy"
	}

	questions, err := s.generateQuestions(ctx, style, topic, difficulty)
	if err != nil {
		s.logger.Warn("quiz generation failed, serving fallback bank",
			zap.String("difficulty", difficulty), zap.Error(err))
		questions = fallbackQuestions(difficulty)
	}
	assignQuestionIDs(questions)

	quiz := StoredQuiz{
		UserID:     userID,
		Topic:      topic,
		Difficulty: difficulty,
		Questions:  questions,
		CreatedAt:  time.Now().UTC(),
	}

	quizID := uuid.NewString()
	if err := s.store.Put(ctx, quizID, quiz); err != nil {
		return "", nil, nil, fmt.Errorf("store quiz: %w", err)
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{ID: q.ID, Question: q.Question, Choices: q.Choices}
	}
	return quizID, &quiz, views, nil
}

func (s *Service) generateQuestions(ctx context.Context, style docs.Style, topic, difficulty string) ([]Question, error) {
	raw, err := s.gen.Generate(ctx, quizSystemPromptText(), buildQuizPrompt(style, topic, difficulty))
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []Question `json:"questions"`
	}
	if err := ai.UnmarshalModelJSON(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Questions) != quizQuestionCount {
		return nil, fmt.Errorf("%w: got %d questions, want %d", ai.ErrMalformedOutput, len(parsed.Questions), quizQuestionCount)
	}
	for i, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("%w: question %d is empty", ai.ErrMalformedOutput, i)
		}
		if len(q.Choices) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d choices", ai.ErrMalformedOutput, i, len(q.Choices))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return nil, fmt.Errorf("%w: question %d correctIndex out of range", ai.ErrMalformedOutput, i)
		}
	}
	return parsed.Questions, nil
}

// Submit scores a stored quiz and deletes it, so a quiz id can be scored at
// most once. Coins are credited only to registered profiles.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitRequest) (*SubmitResult, error) {
	quiz, err := s.store.Get(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}
	if quiz.UserID != "" && quiz.UserID != userID {
		return nil, ErrQuizNotFound
	}

	score, review := scoreQuiz(quiz.Questions, req.Answers)
	total := len(quiz.Questions)
	coinsEarned := score * 5
	if coinsEarned < 5 {
		coinsEarned = 5
	}

	result := &SubmitResult{
		Score:       score,
		Total:       total,
		CoinsEarned: coinsEarned,
		Feedback:    feedbackFor(score, total),
		Review:      review,
	}

	if userID != "" && s.ledger != nil {
		profile, err := s.ledger.CreditCoins(ctx, userID, coinsEarned)
		if err != nil {
			s.logger.Warn("coin credit failed", zap.String("userId", userID), zap.Error(err))
		} else {
			result.Coins = &profile.Coins
		}
	}

	if err := s.store.Delete(ctx, req.QuizID); err != nil {
		s.logger.Warn("quiz cleanup failed", zap.String("quizId", req.QuizID), zap.Error(err))
	}
	return result, nil
}

// scoreQuiz counts correct answers. Pure.
func scoreQuiz(questions []Question, answers []Answer) (int, []ReviewEntry) {
	chosen := make(map[string]int, len(answers))
	for _, a := range answers {
		chosen[a.QuestionID] = a.ChosenIndex
	}

	score := 0
	review := make([]ReviewEntry, 0, len(questions))
	for _, q := range questions {
		idx, answered := chosen[q.ID]
		correct := answered && idx == q.CorrectIndex
		if correct {
			score++
		}
		review = append(review, ReviewEntry{
			QuestionID:   q.ID,
			Correct:      correct,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	return score, review
}

func feedbackFor(score, total int) string {
	if total > 0 && score == total {
		return "Perfect! Great job."
	}
	return "Nice work, keep going!"
}

func resolveTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" || strings.EqualFold(topic, "Surprise me") {
		return defaultTopic
	}
	return topic
}

func assignQuestionIDs(questions []Question) {
	for i := range questions {
		questions[i].ID = fmt.Sprintf("q%d", i+1)
	}
}
