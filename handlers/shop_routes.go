// handlers/shop_routes.go
package handlers

import (
	"errors"

	"focus-quest-system/middleware"
	"focus-quest-system/models"
	"focus-quest-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupShopRoutes(app *fiber.App, shopService *services.ShopService) {
	// Catalog is static — no user context needed
	app.Get("/shop/items", func(c *fiber.Ctx) error {
		return c.JSON(models.ShopItems)
	})

	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Get("/shop/purchases", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		purchases, err := shopService.ListPurchases(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch purchases",
				"cause": err.Error(),
			})
		}
		return c.JSON(purchases)
	})

	secured.Post("/shop/purchase", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		var req struct {
			ItemID string `json:"item_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		purchase, balance, err := shopService.Purchase(userID, req.ItemID)
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shop item not found"})
		case errors.Is(err, services.ErrInsufficientCoins):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "not enough coins"})
		case err != nil:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "purchase failed",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"purchase": purchase, "coins": balance})
	})
}
