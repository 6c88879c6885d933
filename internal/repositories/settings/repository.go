// Package settings persists process-wide populator settings: the custom
// rule set, the auto-populate toggle and the default loot table. Writes
// replace whole values; there is no locking across a read-modify-write.
package settings

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/KirkDiggler/rpg-lootsheet/internal/repositories/settings Repository

// Repository stores populator settings
type Repository interface {
	// GetRules returns the stored rule set, empty when never saved
	GetRules(ctx context.Context) (entities.RuleSet, error)
	SaveRules(ctx context.Context, rules entities.RuleSet) error

	// PopulatorEnabled is false when never set
	PopulatorEnabled(ctx context.Context) (bool, error)
	SetPopulatorEnabled(ctx context.Context, enabled bool) error

	// DefaultTableID is empty when never set
	DefaultTableID(ctx context.Context) (string, error)
	SetDefaultTableID(ctx context.Context, tableID string) error
}
