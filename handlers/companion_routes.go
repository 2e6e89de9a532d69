// handlers/companion_routes.go
package handlers

import (
	"errors"

	"focus-quest-system/middleware"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanionRoutes(app *fiber.App, companionService *services.CompanionService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/companion", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		companion, err := companionService.GetActive(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch companion",
				"cause": err.Error(),
			})
		}
		// No buddy adopted yet — not an error
		return c.JSON(companion)
	})

	secured.Post("/companion/adopt", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			SpeciesID int    `json:"species_id"`
			Nickname  string `json:"nickname"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		companion, err := companionService.Adopt(userID, req.SpeciesID, req.Nickname)
		switch {
		case errors.Is(err, services.ErrCompanionExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "You already have a buddy!"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to adopt companion",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(companion)
	})
}
