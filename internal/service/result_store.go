package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quizsheet/internal/cache"
	"quizsheet/internal/domain"
	"quizsheet/internal/emitter"
	"quizsheet/internal/logger"
)

// ErrResultNotFound is returned for unknown or expired run ids.
var ErrResultNotFound = errors.New("quiz result not found or expired")

// StoredResult is the metadata kept for a finished run.
type StoredResult struct {
	ID        string                `json:"id"`
	FileBase  string                `json:"file_base"`
	Rows      []domain.QuizRow      `json:"rows"`
	Warnings  []domain.ParseWarning `json:"warnings,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	ExpiresIn time.Duration         `json:"-"`
}

// StoredFile is one downloadable table.
type StoredFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ResultStore keeps rendered files so they can be downloaded after the
// generate request returns.
type ResultStore interface {
	Put(ctx context.Context, result *GenerateResult) error
	Get(ctx context.Context, id string) (*StoredResult, error)
	GetFile(ctx context.Context, id string, format emitter.Format) (*StoredFile, error)
	Enabled() bool
}

type resultStoreImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultStore falls back to a no-op store when cache is nil.
func NewResultStore(c domain.Cache, ttl time.Duration) ResultStore {
	if c == nil {
		logger.Get().Warn("ResultStore initialized with nil cache. Downloads by id are disabled.")
		return &noopResultStore{}
	}
	return &resultStoreImpl{cache: c, ttl: ttl}
}

func (s *resultStoreImpl) Enabled() bool { return true }

func resultKey(id string) string {
	return cache.QuizResultKey(id)
}

func fileKey(id string, format emitter.Format) string {
	return cache.QuizFileKey(id, string(format))
}

// Put stores metadata and both rendered tables under the run id.
func (s *resultStoreImpl) Put(ctx context.Context, result *GenerateResult) error {
	if result == nil || result.Empty() {
		return domain.NewInvalidInputError("cannot store a result without rows")
	}

	meta, err := json.Marshal(StoredResult{
		ID:        result.ID,
		FileBase:  result.FileBase,
		Rows:      result.Rows,
		Warnings:  result.Warnings,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.NewInternalError("failed to marshal result for caching", err)
	}

	for _, f := range []emitter.Format{emitter.FormatCSV, emitter.FormatXLSX} {
		if err := s.cache.Set(ctx, fileKey(result.ID, f), result.File(f), s.ttl); err != nil {
			logger.Get().Error("Failed to cache quiz file", zap.Error(err), zap.String("id", result.ID), zap.String("format", string(f)))
			return domain.NewInternalError(fmt.Sprintf("failed to cache %s file for result %s", f, result.ID), err)
		}
	}
	// Metadata goes last so a visible result always has its files.
	if err := s.cache.Set(ctx, resultKey(result.ID), meta, s.ttl); err != nil {
		logger.Get().Error("Failed to cache quiz result", zap.Error(err), zap.String("id", result.ID))
		return domain.NewInternalError(fmt.Sprintf("failed to cache result %s", result.ID), err)
	}

	logger.Get().Debug("Stored quiz result", zap.String("id", result.ID), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *resultStoreImpl) Get(ctx context.Context, id string) (*StoredResult, error) {
	key := resultKey(id)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotFound
		}
		logger.Get().Error("Failed to get quiz result from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get result %s", id), err)
	}

	var res StoredResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal result %s", id), err)
	}

	if ttl, err := s.cache.TTL(ctx, key); err == nil {
		res.ExpiresIn = ttl
	}
	return &res, nil
}

func (s *resultStoreImpl) GetFile(ctx context.Context, id string, format emitter.Format) (*StoredFile, error) {
	meta, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.cache.Get(ctx, fileKey(id, format))
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotFound
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get %s file for result %s", format, id), err)
	}
	return &StoredFile{
		Name:        meta.FileBase + format.Extension(),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// noopResultStore is used when Redis is not configured.
type noopResultStore struct{}

func (s *noopResultStore) Enabled() bool { return false }

func (s *noopResultStore) Put(ctx context.Context, result *GenerateResult) error {
	logger.Get().Debug("No-op ResultStore: Put called")
	return nil
}

func (s *noopResultStore) Get(ctx context.Context, id string) (*StoredResult, error) {
	return nil, ErrResultNotFound
}

func (s *noopResultStore) GetFile(ctx context.Context, id string, format emitter.Format) (*StoredFile, error) {
	return nil, ErrResultNotFound
}
