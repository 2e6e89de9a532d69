package models

// ShopItemType groups catalog entries
type ShopItemType string

const (
	ShopItemTypeReward  ShopItemType = "reward"
	ShopItemTypeUtility ShopItemType = "utility"
	ShopItemTypeGoal    ShopItemType = "goal"
)

// ShopItem is a static catalog entry — purchases are a plain balance debit
type ShopItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        ShopItemType `json:"type"`
	Cost        int64        `json:"cost"`
	Icon        string       `json:"icon"`
}

// Purchase records a debit against the user's coin balance
type Purchase struct {
	ID             string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	ExternalUserID string `gorm:"index;not null" json:"external_user_id"`
	ItemID         string `gorm:"not null" json:"item_id"`
	Cost           int64  `json:"cost"`

	Timestamps
}

// ShopItems is the reward-shop catalog
var ShopItems = []ShopItem{
	{ID: "consumable_01", Name: "Hot & Spicy Chips", Description: "Buy/Eat Chips — you earned it!", Type: ShopItemTypeReward, Cost: 10, Icon: "🌶️"},
	{ID: "consumable_02", Name: "Mala Dinner", Description: "Treat yourself to a Mala feast.", Type: ShopItemTypeReward, Cost: 20, Icon: "🍜"},
	{ID: "consumable_03", Name: "Wingstop", Description: "Wings > everything.", Type: ShopItemTypeReward, Cost: 20, Icon: "🍗"},
	{ID: "item_freeze", Name: "Streak Freeze", Description: "Protects a streak for 24 hours.", Type: ShopItemTypeUtility, Cost: 5, Icon: "🛡️"},
	{ID: "misc_keyboard", Name: "Groupbuy Keyboard Fund", Description: "Neo75 Kit / GMK 80082 — the ultimate goal.", Type: ShopItemTypeGoal, Cost: 500, Icon: "⌨️"},
}

// FindShopItem looks an item up in the static catalog
func FindShopItem(id string) *ShopItem {
	for i := range ShopItems {
		if ShopItems[i].ID == id {
			return &ShopItems[i]
		}
	}
	return nil
}
