package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quizsheet/internal/domain"
	"quizsheet/internal/dto"
	"quizsheet/internal/logger"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports liveness and the state of optional dependencies.
type HealthHandler struct {
	cache     domain.Cache
	generator string
}

// NewHealthHandler accepts a nil cache when the result store is disabled.
func NewHealthHandler(cache domain.Cache, generator string) *HealthHandler {
	return &HealthHandler{cache: cache, generator: generator}
}

// Health answers 503 when a configured result store is unreachable.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Generator: h.generator, ResultStore: "disabled"}
	if h.cache == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Result store ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.ResultStore = "unreachable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	resp.ResultStore = "ok"
	return c.JSON(resp)
}
