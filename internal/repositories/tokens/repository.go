// Package tokens persists token documents. Actors are stored separately and
// attached by the world resolver.
package tokens

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tokensmock github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tokens Repository

// Repository stores tokens per scene
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	ListByScene(ctx context.Context, input ListBySceneInput) (*ListBySceneOutput, error)

	// Update applies the non-nil fields to the token in a single write
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// GetInput identifies a token
type GetInput struct {
	SceneID string
	ID      string
}

// GetOutput holds the token without its actor attached
type GetOutput struct {
	Token *entities.Token
}

// PutInput creates or replaces a token
type PutInput struct {
	Token *entities.Token
}

// PutOutput holds the stored token
type PutOutput struct {
	Token *entities.Token
}

// ListBySceneInput names a scene
type ListBySceneInput struct {
	SceneID string
}

// ListBySceneOutput holds the scene's tokens ordered by ID
type ListBySceneOutput struct {
	Tokens []*entities.Token
}

// UpdateInput changes display and permission data of a token
type UpdateInput struct {
	Token         *entities.Token
	OverlayEffect *string
	Vision        *bool
	Permissions   entities.PermissionMap
	Currency      *entities.Currency
}

// UpdateOutput holds the updated token
type UpdateOutput struct {
	Token *entities.Token
}
