package entities

// EntryType classifies a loot table entry
type EntryType string

// Entry types
const (
	EntryTypeItem     EntryType = "item"
	EntryTypeCurrency EntryType = "currency"
	EntryTypeText     EntryType = "text"
)

// LootTable is a weighted table rolled to produce loot
type LootTable struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// Formula is rolled to pick entries, e.g. "1d100"; empty sums the weights
	Formula string `json:"formula,omitempty"`
	// Draws is how many entries one roll produces, as a dice formula
	Draws   string        `json:"draws,omitempty"`
	Entries []*TableEntry `json:"entries"`
}

// TableEntry is one weighted result of a loot table
type TableEntry struct {
	ID     string    `json:"id"`
	Type   EntryType `json:"type"`
	Text   string    `json:"text"`
	Weight int       `json:"weight"`
	// ItemRef points at a catalog entry such as an SRD equipment index
	ItemRef string `json:"item_ref,omitempty"`
	// Quantity is a dice formula or a fixed number
	Quantity     string       `json:"quantity,omitempty"`
	Denomination Denomination `json:"denomination,omitempty"`
	Rarity       Rarity       `json:"rarity,omitempty"`
}

// TotalWeight sums the entry weights, counting non-positive weights as 1
func (t *LootTable) TotalWeight() int {
	total := 0
	for _, e := range t.Entries {
		total += e.EffectiveWeight()
	}
	return total
}

// EffectiveWeight returns the weight used when rolling
func (e *TableEntry) EffectiveWeight() int {
	if e.Weight <= 0 {
		return 1
	}
	return e.Weight
}
