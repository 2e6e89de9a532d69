package services

import (
	"fmt"

	"focus-quest-system/models"

	"gorm.io/gorm"
)

// ShopService handles reward-shop purchases: a plain balance debit,
// no fulfilment logic.
type ShopService struct {
	DB *gorm.DB
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{DB: db}
}

// Purchase debits the item's cost from the user's coin balance and records
// the purchase. Insufficient funds reject the purchase outright — balances
// never go negative here.
func (s *ShopService) Purchase(userID, itemID string) (*models.Purchase, int64, error) {
	item := models.FindShopItem(itemID)
	if item == nil {
		return nil, 0, ErrItemNotFound
	}

	var purchase models.Purchase
	var balance int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.Where("external_user_id = ?", userID).First(&profile).Error; err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}
		if profile.Coins < item.Cost {
			return ErrInsufficientCoins
		}

		profile.Coins -= item.Cost
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		purchase = models.Purchase{
			ExternalUserID: userID,
			ItemID:         item.ID,
			Cost:           item.Cost,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		balance = profile.Coins
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &purchase, balance, nil
}

// ListPurchases returns the user's purchase history, newest first
func (s *ShopService) ListPurchases(userID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := s.DB.Where("external_user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
