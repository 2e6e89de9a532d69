// handlers/session_routes.go
package handlers

import (
	"errors"
	"strconv"

	"focus-quest-system/middleware"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoutes(app *fiber.App, sessionService *services.SessionService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	// Timer reached zero: roll crit/loot and apply the grant
	secured.Post("/sessions/complete", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			Minutes  int     `json:"minutes"`
			Category string  `json:"category"`
			Label    string  `json:"label"`
			QuestID  *string `json:"quest_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		outcome, err := sessionService.CompleteSession(userID, req.Minutes, req.Category, req.Label, req.QuestID)
		switch {
		case errors.Is(err, services.ErrInvalidDuration):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "minutes must be positive"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete session",
				"cause": err.Error(),
			})
		}
		return c.JSON(outcome)
	})

	// Timer cancelled early — past the grace window this costs coins
	secured.Post("/sessions/fizzle", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			ElapsedSeconds int `json:"elapsed_seconds"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		outcome, err := sessionService.FizzleSession(userID, req.ElapsedSeconds)
		switch {
		case errors.Is(err, services.ErrInvalidDuration):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "elapsed_seconds must be non-negative"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fizzle session",
				"cause": err.Error(),
			})
		}
		return c.JSON(outcome)
	})

	secured.Get("/sessions", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		sessions, err := sessionService.ListSessions(userID, limit)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch sessions",
				"cause": err.Error(),
			})
		}
		return c.JSON(sessions)
	})
}
