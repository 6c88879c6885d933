package lootsheet

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

func (o *orchestrator) GetRegisteredCustomRules(ctx context.Context, _ *session.Session) (entities.RuleSet, error) {
	return o.populator.Rules(ctx)
}

// AddCustomRule merges rule into the stored set by ID; concurrent callers
// race and the last write wins
func (o *orchestrator) AddCustomRule(ctx context.Context, sess *session.Session, rule *entities.Rule) error {
	if !sess.IsGM() {
		return deniedError(sess, "AddCustomRule")
	}
	_, err := o.populator.AddRule(ctx, rule)
	return err
}

func (o *orchestrator) SwitchPopulatorState(ctx context.Context, sess *session.Session, enabled bool) error {
	if !sess.IsGM() {
		return deniedError(sess, "SwitchPopulatorState")
	}
	return o.populator.SetEnabled(ctx, enabled)
}
