package quiz

import "time"

// GenerateRequest asks for a fresh quiz.
type GenerateRequest struct {
	AgeRange   string `json:"ageRange" binding:"required,oneof=8-11 12-15 16-18"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

// SubmitRequest scores a previously generated quiz by id. The client never
// resubmits question content; the stored quiz is the source of truth.
type SubmitRequest struct {
	QuizID  string   `json:"quizId" binding:"required"`
	Answers []Answer `json:"answers" binding:"required,dive"`
}

// Answer is one chosen option.
type Answer struct {
	QuestionID  string `json:"questionId" binding:"required"`
	ChosenIndex int    `json:"chosenIndex"`
}

// Question is a full multiple-choice question including its answer key.
// Only stored server-side until the quiz is scored.
type Question struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// QuestionView is what the client sees at generation time: no answer key.
type QuestionView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
}

// StoredQuiz is the server-side quiz record, kept until submission or expiry.
type StoredQuiz struct {
	UserID     string     `json:"userId,omitempty"`
	Topic      string     `json:"topic"`
	Difficulty string     `json:"difficulty"`
	Questions  []Question `json:"questions"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ReviewEntry shows, after scoring, how one question went.
type ReviewEntry struct {
	QuestionID   string `json:"questionId"`
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correctIndex"`
	Explanation  string `json:"explanation"`
}

// SubmitResult is the scored outcome.
type SubmitResult struct {
	Score       int           `json:"score"`
	Total       int           `json:"total"`
	CoinsEarned int           `json:"coinsEarned"`
	Coins       *int          `json:"coins,omitempty"` // new balance when credited
	Feedback    string        `json:"feedback"`
	Review      []ReviewEntry `json:"review"`
}
