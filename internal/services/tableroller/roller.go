// Package tableroller draws results from weighted loot tables.
package tableroller

//go:generate mockgen -destination=mock/mock_roller.go -package=tablerollermock github.com/KirkDiggler/rpg-lootsheet/internal/services/tableroller Roller

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/pkg/formula"
)

// MaxDraws bounds a single roll
const MaxDraws = 100

// Roller rolls loot tables
type Roller interface {
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)
}

// RollInput selects the table to roll
type RollInput struct {
	Table *entities.LootTable
	// CustomRoll replaces the table's draw count formula, e.g. "1d4+1"
	CustomRoll string
}

// RollOutput holds one result per draw
type RollOutput struct {
	Results []*Result
}

// Result is a drawn table entry
type Result struct {
	Entry *entities.TableEntry
	// Roll is the value that selected the entry
	Roll int
}

// Config holds the dependencies for the roller
type Config struct {
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
}

type roller struct {
	dice dice.Roller
}

// NewRoller creates a table roller
func NewRoller(cfg *Config) (Roller, error) {
	if cfg == nil {
		return nil, errors.Wrap(errors.InvalidArgument("config cannot be nil"), "invalid config")
	}
	r := cfg.Roller
	if r == nil {
		r = dice.DefaultRoller
	}
	return &roller{dice: r}, nil
}

func (r *roller) Roll(_ context.Context, input *RollInput) (*RollOutput, error) {
	if input == nil || input.Table == nil {
		return nil, errors.InvalidArgument("table is required")
	}
	table := input.Table
	if len(table.Entries) == 0 {
		return nil, errors.FailedPreconditionf("table %s has no entries", table.ID)
	}

	drawFormula := table.Draws
	if input.CustomRoll != "" {
		drawFormula = input.CustomRoll
	}
	draws, err := formula.Roll(r.dice, drawFormula, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll draws for table %s", table.ID)
	}
	if draws < 0 {
		draws = 0
	}
	if draws > MaxDraws {
		draws = MaxDraws
	}

	pick := table.Formula
	if pick == "" {
		pick = fmt.Sprintf("1d%d", table.TotalWeight())
	}
	pickFormula, err := formula.Parse(pick)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid formula for table %s", table.ID)
	}

	out := &RollOutput{Results: make([]*Result, 0, draws)}
	for i := 0; i < draws; i++ {
		value, err := pickFormula.Roll(r.dice)
		if err != nil {
			return nil, err
		}
		out.Results = append(out.Results, &Result{
			Entry: entryFor(table, value),
			Roll:  value,
		})
	}

	slog.Debug("Rolled loot table",
		"table", table.ID,
		"draws", draws,
		"formula", pickFormula.String())

	return out, nil
}

// entryFor maps a rolled value onto the cumulative weight ranges. Values
// outside the table clamp to its first or last entry.
func entryFor(table *entities.LootTable, value int) *entities.TableEntry {
	if value < 1 {
		return table.Entries[0]
	}
	upper := 0
	for _, e := range table.Entries {
		upper += e.EffectiveWeight()
		if value <= upper {
			return e
		}
	}
	return table.Entries[len(table.Entries)-1]
}
