package lootsheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/loot"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

// AddLootToSelectedToken fails with ErrNoSelection before any roll when no
// tokens were given and nothing is selected. Otherwise every token gets its
// own envelope and one failing token does not stop the rest.
func (o *orchestrator) AddLootToSelectedToken(ctx context.Context, sess *session.Session, input *AddLootInput) (*response.Envelope[response.Batch[*loot.Summary]], error) {
	if input == nil {
		input = &AddLootInput{}
	}
	if !sess.IsGM() {
		return denied[response.Batch[*loot.Summary]](sess, "AddLootToSelectedToken"), nil
	}

	tokens, err := batch.Resolve(input.Tokens, sess)
	if err != nil {
		sess.Notify().Error(ctx, batch.NoSelectionMessage)
		return nil, err
	}

	if input.Options.Verbose {
		sess.Notify().Info(ctx, MsgLootStarted)
	}

	results := batch.Run(ctx, o.coordinator, tokens,
		func(ctx context.Context, token *entities.Token) (*response.Envelope[*loot.Summary], error) {
			out, err := o.loot.PopulateToken(ctx, &loot.PopulateTokenInput{
				Token:   token,
				TableID: input.TableID,
				Options: input.Options,
			})
			if err != nil {
				return nil, err
			}
			return response.OK(out.Summary), nil
		})

	if input.Options.Verbose {
		sess.Notify().Info(ctx, MsgLootComplete)
	}

	env := response.OK(results)
	verbose(input.Options.Verbose, "AddLootToSelectedToken", env)
	return env, nil
}

func (o *orchestrator) PopulateTokenWithOptions(ctx context.Context, sess *session.Session, input *PopulateTokenInput) (*loot.Summary, error) {
	if input == nil {
		input = &PopulateTokenInput{}
	}
	if !sess.IsGM() {
		return nil, deniedError(sess, "PopulateTokenWithOptions")
	}

	token := input.Token
	if token == nil {
		token = sess.FirstSelected()
	}
	if !token.HasActor() {
		return nil, errors.NotFound(conversion.NoTokenMessage)
	}

	out, err := o.loot.PopulateToken(ctx, &loot.PopulateTokenInput{
		Token:   token,
		TableID: input.TableID,
		Options: input.Options,
	})
	if err != nil {
		return nil, err
	}

	if input.Options.Verbose {
		slog.Info("Populated token with options", "token", token.UUID(), "summary", out.Summary)
	}
	return out.Summary, nil
}
