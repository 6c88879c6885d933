// Package idgen hands out IDs for inventory items and populator rules
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces a fresh ID on every call
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

func (f Func) Generate() string {
	return f()
}

// NewUUID yields "<prefix>_<uuid>", or a bare UUID when prefix is empty
func NewUUID(prefix string) Generator {
	return Func(func() string {
		return withPrefix(prefix, uuid.NewString())
	})
}

// NewSequential yields "<prefix>_1", "<prefix>_2", ... and is safe for
// concurrent use. Seeds and tests rely on the predictable order.
func NewSequential(prefix string) Generator {
	var n atomic.Uint64
	return Func(func() string {
		return withPrefix(prefix, strconv.FormatUint(n.Add(1), 10))
	})
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
