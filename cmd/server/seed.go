package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/logging"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tables"
)

var seedCmd = &cobra.Command{
	Use:   "seed [world.json]",
	Short: "Import users, actors, tables, rules and tokens",
	Long: `Import a world file into the store. Tokens are created last so that,
with the populator switched on, they are populated as they appear.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

// worldFile is the seed file layout
type worldFile struct {
	Users            []*entities.User      `json:"users"`
	Actors           []*entities.Actor     `json:"actors"`
	Tables           []*entities.LootTable `json:"tables"`
	Rules            []*entities.Rule      `json:"rules"`
	DefaultTableID   string                `json:"default_table_id"`
	PopulatorEnabled bool                  `json:"populator_enabled"`
	Tokens           []*entities.Token     `json:"tokens"`
}

type seedReport struct {
	Users, Actors, Tables, Rules, Tokens int
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer logging.Setup(cfg.Log).Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var world worldFile
	if err := json.Unmarshal(data, &world); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()
	a.watch()

	report, err := seedWorld(cmd.Context(), a, &world)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d users, %d actors, %d tables, %d rules and %d tokens\n",
		report.Users, report.Actors, report.Tables, report.Rules, report.Tokens)
	return nil
}

func seedWorld(ctx context.Context, a *app, world *worldFile) (*seedReport, error) {
	report := &seedReport{}

	for _, u := range world.Users {
		if err := a.userRepo.Put(ctx, u); err != nil {
			return nil, errors.Wrapf(err, "failed to seed user %s", u.ID)
		}
		report.Users++
	}
	for _, actor := range world.Actors {
		if _, err := a.actorRepo.Put(ctx, actors.PutInput{Actor: actor}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed actor %s", actor.ID)
		}
		report.Actors++
	}
	for _, table := range world.Tables {
		if _, err := a.tableRepo.Put(ctx, tables.PutInput{Table: table}); err != nil {
			return nil, errors.Wrapf(err, "failed to seed table %s", table.ID)
		}
		report.Tables++
	}

	if world.DefaultTableID != "" {
		if err := a.settingsRepo.SetDefaultTableID(ctx, world.DefaultTableID); err != nil {
			return nil, errors.Wrap(err, "failed to set default table")
		}
	}
	for _, rule := range world.Rules {
		if _, err := a.populator.AddRule(ctx, rule); err != nil {
			return nil, errors.Wrapf(err, "failed to seed rule %s", rule.Name)
		}
		report.Rules++
	}
	if err := a.populator.SetEnabled(ctx, world.PopulatorEnabled); err != nil {
		return nil, errors.Wrap(err, "failed to set populator state")
	}

	for _, token := range world.Tokens {
		if err := a.resolver.CreateToken(ctx, token); err != nil {
			return nil, errors.Wrapf(err, "failed to seed token %s", token.ID)
		}
		report.Tokens++
	}
	return report, nil
}
