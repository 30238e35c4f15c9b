package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3100
	defaultEnv        = "development"
	defaultMongoURI   = "mongodb://localhost:27017"
	defaultMongoDB    = "coinquest"
	defaultRedisURL   = "redis://localhost:6379/0"

	// defaultVectorIndex is the Atlas Vector Search index over docchunks.embedding.
	defaultVectorIndex = "docchunks_embedding_index"

	defaultEmbeddingModel = "text-embedding-3-small"
	defaultEmbeddingDims  = 1536
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                `yaml:"port"`
	Env            string             `yaml:"env"` // "development" | "production"
	Mongo          MongoRuntimeConfig `yaml:"mongo"`
	RedisURL       string             `yaml:"redis_url"`
	JWTSecret      string             `yaml:"jwt_secret"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
	AI             AIConfig           `yaml:"ai"`
}

type MongoRuntimeConfig struct {
	URI         string `yaml:"uri"`
	Database    string `yaml:"database"`
	VectorIndex string `yaml:"vector_index"`
	// VectorSearch toggles Atlas $vectorSearch. When false (local mongod,
	// tests) the summary store falls back to the in-process index.
	VectorSearch bool `yaml:"vector_search"`
}

// AIConfig wires generation providers and the embedding service.
type AIConfig struct {
	Providers    []AIProvider       `yaml:"providers"`
	ExplainModel *AIModelAssignment `yaml:"explain_model,omitempty"`
	ChatModel    *AIModelAssignment `yaml:"chat_model,omitempty"`
	QuizModel    *AIModelAssignment `yaml:"quiz_model,omitempty"`
	Embedding    EmbeddingConfig    `yaml:"embedding"`
}

// AIModelAssignment pins a feature to a provider (and optionally a model).
type AIModelAssignment struct {
	ProviderID string `yaml:"provider_id"`
	Model      string `yaml:"model"`
}

type AIProvider struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Type         string `yaml:"type"` // OpenAI | OpenAI-Compatible | Anthropic
	APIKey       string `yaml:"api_key"`
	Endpoint     string `yaml:"endpoint,omitempty"`
	DefaultModel string `yaml:"default_model"`
	Enabled      bool   `yaml:"enabled"`
}

// EmbeddingConfig configures the embedding endpoint. Dimensions is the
// deployment-wide vector dimension; the summary store rejects any vector that
// does not match it.
type EmbeddingConfig struct {
	APIKey     string `yaml:"api_key"`
	Endpoint   string `yaml:"endpoint,omitempty"`
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return nil, fmt.Errorf("mongo.uri is required in %q", path)
	}
	if strings.TrimSpace(cfg.Mongo.Database) == "" {
		return nil, fmt.Errorf("mongo.database is required in %q", path)
	}
	if cfg.AI.Embedding.Dimensions < 1 {
		return nil, fmt.Errorf("invalid ai.embedding.dimensions %d in %q, expected >= 1", cfg.AI.Embedding.Dimensions, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoRuntimeConfig{
			URI:         defaultMongoURI,
			Database:    defaultMongoDB,
			VectorIndex: defaultVectorIndex,
		},
		RedisURL: defaultRedisURL,
		AI: AIConfig{
			Embedding: EmbeddingConfig{
				Model:      defaultEmbeddingModel,
				Dimensions: defaultEmbeddingDims,
			},
		},
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}
