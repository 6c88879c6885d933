package client

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/handlers/lootsheet/v1alpha1"
)

var (
	kind       string
	tableID    string
	customRoll string
	itemLimit  int
	noStack    bool
	onToken    bool
	verbose    bool
	players    []string
	level      string
	chance     float64
)

// tokensArg leaves tokens unset without args so the selection applies
func tokensArg(req map[string]any, args []string) error {
	if len(args) == 0 {
		return nil
	}
	refs, err := parseRefs(args)
	if err != nil {
		return err
	}
	req["tokens"] = refs
	return nil
}

func playersArg(req map[string]any) {
	if len(players) > 0 {
		req["players"] = players
	}
}

var convertCmd = &cobra.Command{
	Use:   "convert [scene:token...]",
	Short: "Convert tokens into loot sheets",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := map[string]any{"kind": kind, "verbose": verbose}
		if cmd.Flags().Changed("damage-chance") {
			req["options"] = map[string]any{"chance_of_damaged_items": chance}
		}
		if err := tokensArg(req, args); err != nil {
			return err
		}
		return call(v1alpha1.MethodConvertTokens, req)
	},
}

var addLootCmd = &cobra.Command{
	Use:   "add-loot [scene:token...]",
	Short: "Roll loot onto tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		options := map[string]any{
			"custom_roll":    customRoll,
			"item_limit":     itemLimit,
			"is_token_actor": onToken,
			"verbose":        verbose,
		}
		if noStack {
			options["stack_same"] = false
		}
		req := map[string]any{"table_id": tableID, "options": options}
		if err := tokensArg(req, args); err != nil {
			return err
		}
		return call(v1alpha1.MethodAddLoot, req)
	},
}

var observeCmd = &cobra.Command{
	Use:   "observe [scene:token...]",
	Short: "Give players observer access",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := map[string]any{"verbose": verbose}
		playersArg(req)
		if err := tokensArg(req, args); err != nil {
			return err
		}
		return call(v1alpha1.MethodMakeObservable, req)
	},
}

var permissionsCmd = &cobra.Command{
	Use:   "permissions [scene:token]",
	Short: "Show player permission levels of a token",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := map[string]any{"verbose": verbose}
		playersArg(req)
		if len(args) == 1 {
			refs, err := parseRefs(args)
			if err != nil {
				return err
			}
			req["token"] = refs[0]
		}
		return call(v1alpha1.MethodGetPermissionForPlayers, req)
	},
}

var setPermissionCmd = &cobra.Command{
	Use:   "set-permission [scene:token...]",
	Short: "Set a permission level for players",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := map[string]any{"level": level, "verbose": verbose}
		playersArg(req)
		if err := tokensArg(req, args); err != nil {
			return err
		}
		return call(v1alpha1.MethodUpdatePermissionForPlayers, req)
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List custom populator rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodListCustomRules, nil)
	},
}

var addRuleCmd = &cobra.Command{
	Use:   "add-rule [rule.json]",
	Short: "Add or replace a custom populator rule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		var rule entities.Rule
		if err := json.Unmarshal(data, &rule); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		return call(v1alpha1.MethodAddCustomRule, map[string]any{"rule": &rule})
	},
}

var populatorCmd = &cobra.Command{
	Use:   "populator [on|off]",
	Short: "Switch auto-population of new tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		enabled, err := parseSwitch(args[0])
		if err != nil {
			return err
		}
		return call(v1alpha1.MethodSwitchPopulatorState, map[string]any{"enabled": enabled})
	},
}

var populateCmd = &cobra.Command{
	Use:   "populate [scene:token]",
	Short: "Populate one token with explicit options",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := map[string]any{
			"table_id": tableID,
			"options": map[string]any{
				"custom_roll":    customRoll,
				"item_limit":     itemLimit,
				"is_token_actor": onToken,
				"verbose":        verbose,
			},
		}
		if len(args) == 1 {
			refs, err := parseRefs(args)
			if err != nil {
				return err
			}
			req["token"] = refs[0]
		}
		return call(v1alpha1.MethodPopulateToken, req)
	},
}

func parseSwitch(v string) (bool, error) {
	switch v {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	enabled, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("expected on or off, got %q", v)
	}
	return enabled, nil
}

func init() {
	convertCmd.Flags().StringVar(&kind, "kind", "loot", "sheet kind: loot or merchant")
	convertCmd.Flags().Float64Var(&chance, "damage-chance", 0, "chance, 0 to 1, that an item is damaged")
	convertCmd.Flags().BoolVar(&verbose, "verbose", false, "log the response on the server")

	for _, cmd := range []*cobra.Command{addLootCmd, populateCmd} {
		cmd.Flags().StringVar(&tableID, "table", "", "loot table id")
		cmd.Flags().StringVar(&customRoll, "roll", "", "formula for how many entries to draw")
		cmd.Flags().IntVar(&itemLimit, "limit", 0, "maximum new items, 0 for no limit")
		cmd.Flags().BoolVar(&onToken, "token-actor", false, "put coins on the token instead of its actor")
		cmd.Flags().BoolVar(&verbose, "verbose", false, "announce progress")
	}
	addLootCmd.Flags().BoolVar(&noStack, "no-stack", false, "keep identical items apart")

	for _, cmd := range []*cobra.Command{observeCmd, permissionsCmd, setPermissionCmd} {
		cmd.Flags().StringSliceVar(&players, "players", nil, "player ids, all players when empty")
		cmd.Flags().BoolVar(&verbose, "verbose", false, "log the response on the server")
	}
	setPermissionCmd.Flags().StringVar(&level, "level", "observer", "none, limited, observer or owner")
}
