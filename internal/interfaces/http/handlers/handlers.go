package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PavaniTiago/socioteam-api/internal/application/usecases"
	"github.com/PavaniTiago/socioteam-api/internal/domain/sociometry"
)

// Health responde ao health check
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// respondError traduz os erros dos casos de uso para respostas HTTP
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var ve *sociometry.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": ve.Reason,
			"field": ve.Field,
		})
	case errors.Is(err, usecases.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, usecases.ErrLinkExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, usecases.ErrLinkCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{
			"error": "request canceled",
		})
	}

	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// uuidParam lê um parâmetro de rota que precisa ser um UUID
func uuidParam(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
