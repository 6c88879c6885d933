// Package formula evaluates the small dice expressions used by loot tables:
// "3", "2d6", "1d4+1", "3d6*10", "1d8-1".
package formula

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
)

var formulaRegex = regexp.MustCompile(`^(?:(\d*)d(\d+)|(\d+))(?:([+-])(\d+))?(?:\*(\d+))?$`)

// Bounds on each term. They keep RollN allocations small and every result
// well inside int range.
const (
	MaxDice       = 1000
	MaxSides      = 1000
	MaxConstant   = 1_000_000
	MaxMultiplier = 1000
)

// Formula is a parsed dice expression
type Formula struct {
	Count      int
	Size       int
	Constant   int
	Modifier   int
	Multiplier int
	raw        string
}

// Parse parses an expression; whitespace is ignored and "d6" means "1d6"
func Parse(s string) (*Formula, error) {
	raw := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	m := formulaRegex.FindStringSubmatch(raw)
	if m == nil {
		return nil, errors.InvalidArgumentf("invalid dice formula: %s", s)
	}

	f := &Formula{Count: 1, Multiplier: 1, raw: raw}
	terms := []struct {
		name  string
		text  string
		min   int
		max   int
		field *int
	}{
		{"dice count", m[1], 1, MaxDice, &f.Count},
		{"die size", m[2], 1, MaxSides, &f.Size},
		{"constant", m[3], 0, MaxConstant, &f.Constant},
		{"modifier", m[5], 0, MaxConstant, &f.Modifier},
		{"multiplier", m[6], 0, MaxMultiplier, &f.Multiplier},
	}
	for _, term := range terms {
		if term.text == "" {
			continue
		}
		n, err := strconv.Atoi(term.text)
		if err != nil || n < term.min || n > term.max {
			return nil, errors.InvalidArgumentf("%s in %s must be between %d and %d", term.name, s, term.min, term.max)
		}
		*term.field = n
	}
	if m[2] == "" {
		f.Count = 0
	}
	if m[4] == "-" {
		f.Modifier = -f.Modifier
	}
	return f, nil
}

// String returns the normalized expression
func (f *Formula) String() string {
	return f.raw
}

// Roll evaluates the expression
func (f *Formula) Roll(roller dice.Roller) (int, error) {
	total := f.Constant
	if f.Count > 0 {
		if roller == nil {
			roller = dice.DefaultRoller
		}
		rolls, err := roller.RollN(f.Count, f.Size)
		if err != nil {
			return 0, errors.Wrapf(err, "failed to roll %s", f.raw)
		}
		for _, r := range rolls {
			total += r
		}
	}
	return (total + f.Modifier) * f.Multiplier, nil
}

// Max returns the highest possible result
func (f *Formula) Max() int {
	return (f.Constant + f.Count*f.Size + f.Modifier) * f.Multiplier
}

// Roll parses and evaluates s in one step. An empty expression yields def.
func Roll(roller dice.Roller, s string, def int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	f, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return f.Roll(roller)
}
