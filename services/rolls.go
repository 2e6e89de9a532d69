package services

import (
	"math/rand"

	"focus-quest-system/models"
)

// SessionRoll is the random outcome for a finished focus session
type SessionRoll struct {
	IsCrit bool             `json:"is_crit"`
	Loot   *models.LootItem `json:"loot,omitempty"`
}

// RollSessionRewards rolls crit and loot for a session of the given length.
//
// Crit: 10% base, +1% per 10 minutes, capped at +5%.
// Loot: sessions under 15 minutes never drop (crit still rolls); otherwise
// 5% base, +1% per 10 minutes, capped at +10%. Rarity is a single uniform
// roll over [0,100): >90 epic, >60 rare, else common, then a uniform pick
// from that rarity's pool. An empty pool falls back to the common pool; if
// that is empty too the drop is simply skipped, not an error.
//
// All rolls are independent. rng is injected so probability tests are
// deterministic.
func RollSessionRewards(rng *rand.Rand, minutes int, items []models.LootItem) SessionRoll {
	critChance := 0.10 + minFloat(0.05, float64(minutes/10)*0.01)
	roll := SessionRoll{IsCrit: rng.Float64() < critChance}

	if minutes < 15 {
		return roll
	}

	lootChance := 0.05 + minFloat(0.10, float64(minutes/10)*0.01)
	if rng.Float64() >= lootChance {
		return roll
	}

	rarity := models.RarityCommon
	switch rarityRoll := rng.Float64() * 100; {
	case rarityRoll > 90:
		rarity = models.RarityEpic
	case rarityRoll > 60:
		rarity = models.RarityRare
	}

	pool := lootByRarity(items, rarity)
	if len(pool) == 0 {
		pool = lootByRarity(items, models.RarityCommon)
	}
	if len(pool) == 0 {
		return roll
	}

	item := pool[rng.Intn(len(pool))]
	roll.Loot = &item
	return roll
}

func lootByRarity(items []models.LootItem, rarity string) []models.LootItem {
	var pool []models.LootItem
	for _, item := range items {
		if item.Rarity == rarity {
			pool = append(pool, item)
		}
	}
	return pool
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
