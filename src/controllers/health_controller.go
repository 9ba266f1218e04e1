package controllers

import (
	"Mergington-Activities/src/models"

	"github.com/gofiber/fiber/v2"
)

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  models.HealthResponse
// @Router       /health [get]
func (ac *ActivityController) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "ok", Activities: ac.registry.Len()})
}
