package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Comparison operators for rule filters
const (
	ComparisonEquals      = "=="
	ComparisonNotEquals   = "!="
	ComparisonIncludes    = "includes"
	ComparisonGreaterThan = ">"
	ComparisonLessThan    = "<"
	ComparisonGreaterOrEq = ">="
	ComparisonLessOrEq    = "<="
)

// Filter paths understood by rules
const (
	FilterPathName            = "name"
	FilterPathType            = "type"
	FilterPathCreatureType    = "creature_type"
	FilterPathChallengeRating = "challenge_rating"
)

// Rule decides which table populates actors matching its filters
type Rule struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Filters    []*RuleFilter `json:"filters"`
	TableID    string        `json:"table_id"`
	CustomRoll string        `json:"custom_roll,omitempty"`
	ItemLimit  int           `json:"item_limit,omitempty"`
	StackSame  *bool         `json:"stack_same,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// RuleFilter compares one actor field to a value
type RuleFilter struct {
	Path       string `json:"path"`
	Comparison string `json:"comparison"`
	Value      string `json:"value"`
}

// RuleSet indexes rules by ID
type RuleSet map[string]*Rule

// Matches reports whether every filter accepts the actor
func (r *Rule) Matches(actor *Actor) bool {
	if actor == nil {
		return false
	}
	for _, f := range r.Filters {
		ok, err := f.Matches(actor)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Matches evaluates the filter against an actor
func (f *RuleFilter) Matches(actor *Actor) (bool, error) {
	switch f.Path {
	case FilterPathChallengeRating:
		want, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
		if err != nil {
			return false, fmt.Errorf("filter value %q is not a number", f.Value)
		}
		return compareNumbers(actor.ChallengeRating, want, f.Comparison)
	case FilterPathName:
		return compareStrings(actor.Name, f.Value, f.Comparison)
	case FilterPathType:
		return compareStrings(actor.Type, f.Value, f.Comparison)
	case FilterPathCreatureType:
		return compareStrings(actor.CreatureType, f.Value, f.Comparison)
	default:
		return false, fmt.Errorf("unknown filter path %q", f.Path)
	}
}

func compareStrings(got, want, op string) (bool, error) {
	got, want = strings.ToLower(got), strings.ToLower(want)
	switch op {
	case ComparisonEquals, "":
		return got == want, nil
	case ComparisonNotEquals:
		return got != want, nil
	case ComparisonIncludes:
		return strings.Contains(got, want), nil
	default:
		return false, fmt.Errorf("comparison %q is not supported for text", op)
	}
}

func compareNumbers(got, want float64, op string) (bool, error) {
	switch op {
	case ComparisonEquals, "":
		return got == want, nil
	case ComparisonNotEquals:
		return got != want, nil
	case ComparisonGreaterThan:
		return got > want, nil
	case ComparisonLessThan:
		return got < want, nil
	case ComparisonGreaterOrEq:
		return got >= want, nil
	case ComparisonLessOrEq:
		return got <= want, nil
	default:
		return false, fmt.Errorf("comparison %q is not supported for numbers", op)
	}
}
