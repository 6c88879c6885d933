package lootsheet

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/permissions"
	"github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

func (o *orchestrator) MakeObservable(ctx context.Context, sess *session.Session, input *MakeObservableInput) *response.Envelope[response.Batch[entities.PermissionMap]] {
	if input == nil {
		input = &MakeObservableInput{}
	}
	if !sess.IsGM() {
		return denied[response.Batch[entities.PermissionMap]](sess, "MakeObservable")
	}

	env := response.OK(o.setPermissions(ctx, selection(input.Tokens, sess), entities.PermissionObserver, players(input.Players, sess)))
	verbose(input.Verbose, "MakeObservable", env)
	return env
}

func (o *orchestrator) UpdatePermissionForPlayers(ctx context.Context, sess *session.Session, input *UpdatePermissionForPlayersInput) *response.Envelope[response.Batch[entities.PermissionMap]] {
	if input == nil {
		input = &UpdatePermissionForPlayersInput{}
	}
	if !sess.IsGM() {
		return denied[response.Batch[entities.PermissionMap]](sess, "UpdatePermissionForPlayers")
	}

	level := entities.PermissionObserver
	if input.Level != nil {
		if !input.Level.IsValid() {
			return response.FromError[response.Batch[entities.PermissionMap]](
				errors.InvalidArgumentf("invalid permission level %d", *input.Level))
		}
		level = *input.Level
	}

	env := response.OK(o.setPermissions(ctx, selection(input.Tokens, sess), level, players(input.Players, sess)))
	verbose(input.Verbose, "UpdatePermissionForPlayers", env)
	return env
}

func (o *orchestrator) setPermissions(ctx context.Context, list []*entities.Token, level entities.PermissionLevel, users []*entities.User) response.Batch[entities.PermissionMap] {
	return batch.Run(ctx, o.coordinator, list,
		func(ctx context.Context, token *entities.Token) (*response.Envelope[entities.PermissionMap], error) {
			updated := permissions.ComputeUpdated(token, level, users)
			if _, err := o.tokenRepo.Update(ctx, tokens.UpdateInput{
				Token:       token,
				Permissions: updated,
			}); err != nil {
				return nil, errors.Wrapf(err, "failed to update permissions of %s", token.UUID())
			}
			return response.OK(updated), nil
		})
}

// GetPermissionForPlayers is read-only and open to every caller
func (o *orchestrator) GetPermissionForPlayers(_ context.Context, sess *session.Session, input *GetPermissionForPlayersInput) *response.Envelope[map[string]entities.PermissionLevel] {
	if input == nil {
		input = &GetPermissionForPlayersInput{}
	}

	token := input.Token
	if token == nil {
		token = sess.FirstSelected()
	}

	var env *response.Envelope[map[string]entities.PermissionLevel]
	if token == nil {
		env = response.FromError[map[string]entities.PermissionLevel](errors.NotFound(conversion.NoTokenMessage))
	} else {
		env = response.OK(permissions.ForPlayers(token, players(input.Players, sess)))
	}
	verbose(input.Verbose, "GetPermissionForPlayers", env)
	return env
}
