package loot

import (
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

// Options tune how loot is generated for a token
type Options struct {
	// IsTokenActor puts coins on the token instead of its actor
	IsTokenActor bool `json:"is_token_actor,omitempty"`
	// StackSame merges identical items, default true
	StackSame *bool `json:"stack_same,omitempty"`
	// CustomRoll overrides the table's draw formula
	CustomRoll string `json:"custom_roll,omitempty"`
	// ItemLimit caps new inventory entries, 0 is unlimited
	ItemLimit int  `json:"item_limit,omitempty"`
	Verbose   bool `json:"verbose,omitempty"`
}

// PopulateTokenInput defines the request for populating one token
type PopulateTokenInput struct {
	Token *entities.Token
	// Table is rolled when given, otherwise TableID, then rules, then the default
	Table   *entities.LootTable
	TableID string
	Options Options
}

// PopulateTokenOutput defines the response for populating one token
type PopulateTokenOutput struct {
	Summary *Summary
}

// Summary reports what a token received
type Summary struct {
	TokenUUID string            `json:"token_uuid"`
	TableID   string            `json:"table_id"`
	RuleID    string            `json:"rule_id,omitempty"`
	Rolls     int               `json:"rolls"`
	Created   []*entities.Item  `json:"created"`
	Stacked   []*entities.Item  `json:"stacked"`
	Skipped   int               `json:"skipped,omitempty"`
	Currency  entities.Currency `json:"currency"`
	// Purse is the balance after the coins were added
	Purse     entities.Currency `json:"purse"`
	Text      []string          `json:"text,omitempty"`
}
