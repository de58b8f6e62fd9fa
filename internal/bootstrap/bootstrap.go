// Package bootstrap wires configuration into the services shared by the commands.
package bootstrap

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"quizsheet/internal/adapter"
	"quizsheet/internal/adapter/quizgen"
	"quizsheet/internal/adapter/youtube"
	"quizsheet/internal/cache"
	"quizsheet/internal/config"
	"quizsheet/internal/domain"
	"quizsheet/internal/extractor"
	"quizsheet/internal/logger"
	"quizsheet/internal/service"
)

// NewExtractor builds the content extractor with a YouTube transcript client.
func NewExtractor(cfg config.ExtractorConfig) *extractor.Extractor {
	transcripts := youtube.NewTranscriptClient(nil, &http.Client{Timeout: cfg.TranscriptTimeout})
	return extractor.New(transcripts, extractor.Options{
		WebsiteTimeout:     cfg.WebsiteTimeout,
		TranscriptTimeout:  cfg.TranscriptTimeout,
		UserAgent:          cfg.UserAgent,
		PreferredLanguages: cfg.PreferredLanguages,
	})
}

// NewPipeline builds the generator selected in cfg and the pipeline around it.
// cfg must already be validated.
func NewPipeline(ctx context.Context, cfg *config.Config) (service.QuizPipelineService, error) {
	generator, err := quizgen.New(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz generator initialized", zap.String("generator", generator.Name()))
	return service.NewQuizPipelineService(NewExtractor(cfg.Extractor), generator), nil
}

// NewCache connects to Redis when an address is configured. It returns nil,
// and logs why, when the result store should stay disabled.
func NewCache(cfg config.RedisConfig) domain.Cache {
	if cfg.Address == "" {
		logger.Get().Warn("Redis is not configured. Running without result store.")
		return nil
	}
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Get().Warn("Failed to connect to Redis. Running without result store.", zap.Error(err))
		return nil
	}
	logger.Get().Info("Successfully connected to Redis", zap.String("address", cfg.Address))
	return adapter.NewRedisCacheAdapter(client)
}

// Defaults converts configured defaults into generation options.
func Defaults(cfg config.DefaultsConfig) domain.GenerationOptions {
	opts := domain.DefaultOptions()
	if cfg.QuestionCount > 0 {
		opts.QuestionCount = cfg.QuestionCount
	}
	if cfg.TimeLimit > 0 {
		opts.TimeLimit = cfg.TimeLimit
	}
	return opts
}
