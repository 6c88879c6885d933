// Package tables persists loot tables
package tables

import (
	"context"

	"github.com/KirkDiggler/rpg-lootsheet/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tablesmock github.com/KirkDiggler/rpg-lootsheet/internal/repositories/tables Repository

// Repository stores loot tables
type Repository interface {
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput identifies a table
type GetInput struct {
	ID string
}

// GetOutput holds the loaded table
type GetOutput struct {
	Table *entities.LootTable
}

// PutInput creates or replaces a table
type PutInput struct {
	Table *entities.LootTable
}

// PutOutput holds the stored table
type PutOutput struct {
	Table *entities.LootTable
}

// ListInput lists every table
type ListInput struct{}

// ListOutput holds the tables ordered by ID
type ListOutput struct {
	Tables []*entities.LootTable
}
