// handlers/profile_routes.go
package handlers

import (
	"focus-quest-system/middleware"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupProfileRoutes(app *fiber.App, profileService *services.ProfileService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/profile", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		profile, err := profileService.EnsureProfile(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch profile",
				"cause": err.Error(),
			})
		}
		return c.JSON(profile)
	})

	secured.Patch("/profile", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var updates map[string]interface{}
		if err := c.BodyParser(&updates); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		profile, err := profileService.UpdateProfile(userID, updates)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update profile",
				"cause": err.Error(),
			})
		}
		return c.JSON(profile)
	})
}
