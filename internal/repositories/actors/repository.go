// Package actors persists actor documents. Mutating calls apply the change
// to the actor pointer they are given before persisting, so every token
// sharing that actor sees the new state.
package actors

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/rpg-lootsheet/internal/repositories/actors Repository

// Repository stores actors and their inventories
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update applies the non-nil fields in a single write
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	DeleteItems(ctx context.Context, input DeleteItemsInput) (*DeleteItemsOutput, error)
	CreateItems(ctx context.Context, input CreateItemsInput) (*CreateItemsOutput, error)
	UpdateItems(ctx context.Context, input UpdateItemsInput) (*UpdateItemsOutput, error)
}

// GetInput identifies an actor
type GetInput struct {
	ID string
}

// GetOutput holds the loaded actor
type GetOutput struct {
	Actor *entities.Actor
}

// PutInput creates or replaces an actor
type PutInput struct {
	Actor *entities.Actor
}

// PutOutput holds the stored actor
type PutOutput struct {
	Actor *entities.Actor
}

// ListInput lists every actor
type ListInput struct{}

// ListOutput holds the actors ordered by ID
type ListOutput struct {
	Actors []*entities.Actor
}

// UpdateInput changes an actor. A non-nil Items replaces the inventory.
type UpdateInput struct {
	Actor    *entities.Actor
	Items    []*entities.Item
	Flags    *entities.SheetFlags
	Currency *entities.Currency
}

// UpdateOutput holds the updated actor
type UpdateOutput struct {
	Actor *entities.Actor
}

// DeleteItemsInput removes items by ID
type DeleteItemsInput struct {
	Actor   *entities.Actor
	ItemIDs []string
}

// DeleteItemsOutput reports how many items were removed
type DeleteItemsOutput struct {
	Deleted int
}

// CreateItemsInput appends items; missing IDs are generated
type CreateItemsInput struct {
	Actor *entities.Actor
	Items []*entities.Item
}

// CreateItemsOutput holds the created items
type CreateItemsOutput struct {
	Items []*entities.Item
}

// UpdateItemsInput replaces existing items matched by ID
type UpdateItemsInput struct {
	Actor *entities.Actor
	Items []*entities.Item
}

// UpdateItemsOutput holds the updated items
type UpdateItemsOutput struct {
	Items []*entities.Item
}
