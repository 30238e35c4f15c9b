package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// quizTTL is how long an unanswered quiz stays scoreable.
const quizTTL = 30 * time.Minute

// ErrQuizNotFound covers unknown, expired and already-scored quiz ids.
var ErrQuizNotFound = errors.New("quiz not found or expired")

// QuizStore holds generated quizzes between generation and submission.
type QuizStore interface {
	Put(ctx context.Context, id string, quiz StoredQuiz) error
	Get(ctx context.Context, id string) (*StoredQuiz, error)
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps quizzes in Redis with a TTL, so abandoned quizzes clean
// themselves up.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func quizKey(id string) string { return "cq:quiz:" + id }

func (s *RedisStore) Put(ctx context.Context, id string, quiz StoredQuiz) error {
	payload, err := json.Marshal(quiz)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return s.rdb.Set(ctx, quizKey(id), payload, quizTTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*StoredQuiz, error) {
	payload, err := s.rdb.Get(ctx, quizKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}

	var quiz StoredQuiz
	if err := json.Unmarshal([]byte(payload), &quiz); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	return &quiz, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, quizKey(id)).Err()
}

// MemoryStore is the test double. No TTL expiry.
type MemoryStore struct {
	mu      sync.Mutex
	quizzes map[string]StoredQuiz
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quizzes: make(map[string]StoredQuiz)}
}

func (s *MemoryStore) Put(_ context.Context, id string, quiz StoredQuiz) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quizzes[id] = quiz
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*StoredQuiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, ErrQuizNotFound
	}
	return &quiz, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quizzes, id)
	return nil
}
