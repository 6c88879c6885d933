package entities

import (
	"fmt"
	"strings"
)

// SheetClassLootNPC is the sheet class installed on converted actors
const SheetClassLootNPC = "dnd5e.LootSheetNPC5e"

// LootSheetType selects the flavor of a lootable sheet
type LootSheetType string

// Loot sheet types
const (
	LootSheetTypeLoot     LootSheetType = "Loot"
	LootSheetTypeMerchant LootSheetType = "Merchant"
)

// SheetKind is the conversion target requested by a caller
type SheetKind string

// Sheet kinds
const (
	SheetKindLoot     SheetKind = "loot"
	SheetKindMerchant SheetKind = "merchant"
)

// Token overlay icons
const (
	OverlayChest = "icons/svg/chest.svg"
	OverlayCoins = "icons/svg/coins.svg"
)

// ParseSheetKind is case-insensitive; an empty value means loot
func ParseSheetKind(s string) (SheetKind, error) {
	switch SheetKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", SheetKindLoot:
		return SheetKindLoot, nil
	case SheetKindMerchant:
		return SheetKindMerchant, nil
	default:
		return "", fmt.Errorf("unknown sheet kind %q", s)
	}
}

// LootSheetType returns the flag value for the kind
func (k SheetKind) LootSheetType() LootSheetType {
	if k == SheetKindMerchant {
		return LootSheetTypeMerchant
	}
	return LootSheetTypeLoot
}

// OverlayIcon returns the token overlay for the kind
func (k SheetKind) OverlayIcon() string {
	if k == SheetKindMerchant {
		return OverlayCoins
	}
	return OverlayChest
}

// SheetFlags is the typed metadata controlling how an actor's sheet presents
type SheetFlags struct {
	SheetClass        string          `json:"sheet_class,omitempty"`
	LootSheetType     LootSheetType   `json:"loot_sheet_type,omitempty"`
	PlayersPermission PermissionLevel `json:"players_permission"`
}

// Actor is the document behind one or more tokens
type Actor struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Type            string        `json:"type"`
	CreatureType    string        `json:"creature_type,omitempty"`
	ChallengeRating float64       `json:"challenge_rating,omitempty"`
	Items           []*Item       `json:"items"`
	Flags           SheetFlags    `json:"flags"`
	Permissions     PermissionMap `json:"permissions,omitempty"`
	Currency        Currency      `json:"currency"`
}

// GetID returns the actor ID
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the entity type
func (a *Actor) GetType() string {
	return "actor"
}

// ItemIDs returns the full key set of the inventory in order
func (a *Actor) ItemIDs() []string {
	ids := make([]string, 0, len(a.Items))
	for _, item := range a.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// FindItem returns the inventory entry with the given ID
func (a *Actor) FindItem(id string) *Item {
	for _, item := range a.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// IsLootable reports whether the actor carries a loot sheet
func (a *Actor) IsLootable() bool {
	return a.Flags.SheetClass == SheetClassLootNPC
}
