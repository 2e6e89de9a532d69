// handlers/habit_routes.go
package handlers

import (
	"errors"

	"focus-quest-system/middleware"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupHabitRoutes(app *fiber.App, habitService *services.HabitService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	// Today's entries for the habit board
	secured.Get("/habits", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		entries, err := habitService.TodayEntries(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch habit entries",
				"cause": err.Error(),
			})
		}
		return c.JSON(entries)
	})

	secured.Get("/habits/catalog", func(c *fiber.Ctx) error {
		habits, err := habitService.ListHabits()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch habit catalog",
				"cause": err.Error(),
			})
		}
		return c.JSON(habits)
	})

	secured.Post("/habits/catalog", func(c *fiber.Ctx) error {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
			Cadence     string `json:"cadence"`
			RewardCoins int64  `json:"reward_coins"`
			Target      int    `json:"target"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		habit, err := habitService.CreateHabit(req.Name, req.Description, req.Icon, req.Cadence, req.RewardCoins, req.Target)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(habit)
	})

	// Complete a habit for today (once per day only)
	secured.Post("/habits/complete", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			HabitID string `json:"habit_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		streak, err := habitService.CompleteHabitToday(userID, req.HabitID)
		switch {
		case errors.Is(err, services.ErrAlreadyCompleted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "already_completed",
				"message": "Already completed today",
			})
		case errors.Is(err, services.ErrHabitRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "habit_id is required"})
		case errors.Is(err, services.ErrHabitNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "habit not found"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete habit",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(streak)
	})

	// Batch back-fill for a past date. Always 200 with per-item results —
	// one habit failing never fails the batch.
	secured.Post("/habits/recap", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			Habits []string `json:"habits"`
			Date   string   `json:"date"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if len(req.Habits) == 0 || req.Date == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "habits and date are required"})
		}

		results, err := habitService.RecapHabits(userID, req.Habits, req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"results": results})
	})

	secured.Get("/habits/streaks", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		streaks, err := habitService.ListStreaks(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch streaks",
				"cause": err.Error(),
			})
		}
		return c.JSON(streaks)
	})

	// Explicit streak repair from the entry ledger
	secured.Post("/habits/streaks/rebuild", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			HabitID string `json:"habit_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		streak, err := habitService.RebuildStreak(userID, req.HabitID)
		switch {
		case errors.Is(err, services.ErrHabitRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "habit_id is required"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to rebuild streak",
				"cause": err.Error(),
			})
		}
		return c.JSON(streak)
	})
}
