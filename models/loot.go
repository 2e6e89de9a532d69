package models

// Loot rarity tiers
const (
	RarityCommon = "common"
	RarityRare   = "rare"
	RarityEpic   = "epic"
)

// LootItem is a session drop, auto-redeemed for XP and/or coins on award.
// Static config — not persisted.
type LootItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rarity      string `json:"rarity"`
	Icon        string `json:"icon"`
	RewardXP    int64  `json:"reward_xp"`
	RewardCoins int64  `json:"reward_coins"`
}

// DefaultLootItems is the drop table for session rolls
var DefaultLootItems = []LootItem{
	{ID: "loot_berry", Name: "Oran Berry", Rarity: RarityCommon, Icon: "🫐", RewardXP: 5},
	{ID: "loot_puff", Name: "Poké Puff", Rarity: RarityCommon, Icon: "🧁", RewardCoins: 2},
	{ID: "loot_candy_s", Name: "XP Candy S", Rarity: RarityCommon, Icon: "🍬", RewardXP: 10},
	{ID: "loot_candy_l", Name: "Rare Candy", Rarity: RarityRare, Icon: "🍭", RewardXP: 25},
	{ID: "loot_charm", Name: "Shiny Charm", Rarity: RarityRare, Icon: "✨", RewardCoins: 10},
	{ID: "loot_golden_berry", Name: "Golden Berry", Rarity: RarityEpic, Icon: "🌟", RewardXP: 100},
	{ID: "loot_nugget", Name: "Nugget", Rarity: RarityEpic, Icon: "🪙", RewardCoins: 50},
}
