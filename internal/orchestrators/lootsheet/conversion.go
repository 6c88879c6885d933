package lootsheet

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/batch"
	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
	"github.com/KirkDiggler/rpg-lootsheet/internal/errors"
	"github.com/KirkDiggler/rpg-lootsheet/internal/orchestrators/conversion"
	"github.com/KirkDiggler/rpg-lootsheet/internal/response"
	"github.com/KirkDiggler/rpg-lootsheet/internal/services/curation"
	"github.com/KirkDiggler/rpg-lootsheet/internal/session"
)

func (o *orchestrator) ConvertToken(ctx context.Context, sess *session.Session, input *ConvertTokenInput) *response.Envelope[*entities.Token] {
	if input == nil {
		input = &ConvertTokenInput{}
	}
	if !sess.IsGM() {
		return denied[*entities.Token](sess, "ConvertToken")
	}

	token := input.Token
	if token == nil {
		token = sess.FirstSelected()
	}

	env := o.convert(ctx, sess, token, input.Kind, input.Options)
	verbose(input.Verbose, "ConvertToken", env)
	return env
}

func (o *orchestrator) ConvertTokens(ctx context.Context, sess *session.Session, input *ConvertTokensInput) *response.Envelope[response.Batch[*entities.Token]] {
	if input == nil {
		input = &ConvertTokensInput{}
	}
	if !sess.IsGM() {
		return denied[response.Batch[*entities.Token]](sess, "ConvertTokens")
	}

	results := batch.Run(ctx, o.coordinator, selection(input.Tokens, sess),
		func(ctx context.Context, token *entities.Token) (*response.Envelope[*entities.Token], error) {
			return o.convert(ctx, sess, token, input.Kind, input.Options), nil
		})

	env := response.OK(results)
	verbose(input.Verbose, "ConvertTokens", env)
	return env
}

func (o *orchestrator) convert(ctx context.Context, sess *session.Session, token *entities.Token, kind string, opts curation.Options) *response.Envelope[*entities.Token] {
	if !token.HasActor() {
		return response.FromError[*entities.Token](errors.NotFound(conversion.NoTokenMessage))
	}

	out, err := o.conversion.ConvertToken(ctx, &conversion.ConvertTokenInput{
		Token:   token,
		Kind:    kind,
		Options: opts,
		Players: sess.Players(),
	})
	if err != nil {
		return response.FromError[*entities.Token](err)
	}
	return response.OK(out.Token)
}
