package entities

import "strings"

// Rarity of an item
type Rarity string

// Item rarities
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "veryRare"
	RarityLegendary Rarity = "legendary"
)

// Item is an inventory entry owned by exactly one actor
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Quantity int     `json:"quantity"`
	Rarity   Rarity  `json:"rarity,omitempty"`
	Price    float64 `json:"price"`  // in gp
	Weight   float64 `json:"weight"` // in lb
	SourceID string  `json:"source_id,omitempty"`
	Damaged  bool    `json:"damaged,omitempty"`
}

// StackKey identifies items that merge into one inventory entry
func (i *Item) StackKey() string {
	if i.SourceID != "" {
		return i.SourceID
	}
	return strings.ToLower(strings.TrimSpace(i.Name)) + "|" + strings.ToLower(i.Type)
}

// Clone returns a copy of the item
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

// CloneItems copies every item of a slice
func CloneItems(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
