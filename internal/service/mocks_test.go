package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"quizsheet/internal/domain"
)

// ManualMockExtractor for ContentExtractor
type ManualMockExtractor struct {
	ExtractFunc func(ctx context.Context, src domain.Source) (string, error)
}

func (m *ManualMockExtractor) Extract(ctx context.Context, src domain.Source) (string, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, src)
	}
	return "", errors.New("ExtractFunc not set")
}

// ManualMockGenerator for domain.QuizTextGenerator
type ManualMockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Prompts      []string
}

func (m *ManualMockGenerator) GenerateQuizText(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("GenerateFunc not set")
}

func (m *ManualMockGenerator) Name() string { return "mock" }

// MemoryCache is an in-memory domain.Cache for store tests.
type MemoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	SetErr  error
	GetErr  error
	SetKeys []string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	m.SetKeys = append(m.SetKeys, key)
	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

func (m *MemoryCache) TTL(ctx context.Context, key string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; !ok {
		return 0, domain.ErrCacheMiss
	}
	return m.ttls[key], nil
}

func (m *MemoryCache) Ping(ctx context.Context) error { return nil }
