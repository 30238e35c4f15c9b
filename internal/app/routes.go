package app

import (
	"github.com/gin-gonic/gin"

	"github.com/coinquest/core/internal/middleware"
	"github.com/coinquest/core/internal/modules/ai"
	"github.com/coinquest/core/internal/modules/docs"
	"github.com/coinquest/core/internal/modules/health"
	"github.com/coinquest/core/internal/modules/quiz"
	"github.com/coinquest/core/internal/modules/shop"
	"github.com/coinquest/core/internal/modules/user"
	pkgredis "github.com/coinquest/core/internal/pkg/redis"
	"github.com/coinquest/core/internal/pkg/response"
)

const apiPrefix = "/api/v2"

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":     "coinquest-core",
		"version":  "1.0.0",
		"homepage": "https://github.com/coinquest/core",
	}
	r.GET("/", func(c *gin.Context) { response.OK(c, appInfo) })

	// Rate limiting and idempotence run on every API route (requires Redis).
	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth())
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.Idempotence(rc.Raw()))

	// Shared AI clients; config may pin each feature to a different model.
	explainGen := ai.NewGenerator(a.cfg.AI, a.cfg.AI.ExplainModel)
	chatGen := ai.NewGenerator(a.cfg.AI, a.cfg.AI.ChatModel)
	quizGen := ai.NewGenerator(a.cfg.AI, a.cfg.AI.QuizModel)
	embedder := ai.NewEmbedder(a.cfg.AI.Embedding)

	summaryStore := docs.NewMongoStore(a.db, a.cfg.AI.Embedding.Dimensions, a.cfg.Mongo.VectorIndex, a.cfg.Mongo.VectorSearch)
	docsSvc := docs.NewService(summaryStore, explainGen, chatGen, embedder, a.logger)
	docs.NewHandler(docsSvc).RegisterRoutes(api)

	profileStore := user.NewStore(a.db)
	user.NewHandler(profileStore).RegisterRoutes(api, authMW)

	quizSvc := quiz.NewService(quiz.NewRedisStore(rc.Raw()), quizGen, profileStore, a.logger)
	quiz.NewHandler(quizSvc).RegisterRoutes(api)

	shop.NewHandler(profileStore).RegisterRoutes(api, authMW)

	health.NewHandler(rc.Raw()).RegisterRoutes(api)
}
