// handlers/quest_routes.go
package handlers

import (
	"errors"

	"focus-quest-system/middleware"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupQuestRoutes(app *fiber.App, questService *services.QuestService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/quests", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		quests, err := questService.ListQuests(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch quests",
				"cause": err.Error(),
			})
		}
		return c.JSON(quests)
	})

	secured.Post("/quests", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var input services.QuestInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		quest, err := questService.CreateQuest(userID, input)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(quest)
	})

	secured.Patch("/quests/:id", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var updates map[string]interface{}
		if err := c.BodyParser(&updates); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		quest, err := questService.UpdateQuest(userID, c.Params("id"), updates)
		switch {
		case errors.Is(err, services.ErrQuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "quest not found"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update quest",
				"cause": err.Error(),
			})
		}
		return c.JSON(quest)
	})

	secured.Delete("/quests/:id", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		err := questService.DeleteQuest(userID, c.Params("id"))
		switch {
		case errors.Is(err, services.ErrQuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "quest not found"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to delete quest",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"success": true})
	})

	// One-time reward grant on the pending → completed transition.
	// Re-completion conflicts; un-completing never reverses the grant.
	secured.Post("/quests/:id/complete", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		quest, outcome, err := questService.CompleteQuest(userID, c.Params("id"))
		switch {
		case errors.Is(err, services.ErrQuestNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "quest not found"})
		case errors.Is(err, services.ErrAlreadyCompleted):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   "already_completed",
				"message": "Quest already completed",
			})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete quest",
				"cause": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"quest": quest, "rewards": outcome})
	})
}
