// Package users persists game participants
package users

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

// Repository stores users
type Repository interface {
	Get(ctx context.Context, id string) (*entities.User, error)
	Put(ctx context.Context, user *entities.User) error
	List(ctx context.Context) ([]*entities.User, error)
}
