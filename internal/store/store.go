package store

import (
	"context"

	"github.com/faideww/koga-fishing/internal/fish"
	"github.com/google/uuid"
)

// Journal records landed fish. It never holds game state; a session cannot
// be restored from it.
type Journal interface {
	Add(ctx context.Context, c fish.Catch) error
	TopByPrice(ctx context.Context, limit int) ([]fish.Catch, error)
	TopByPriceFish(ctx context.Context, fishId fish.FishId, limit int) ([]fish.Catch, error)
	CountBySession(ctx context.Context, sessionId uuid.UUID) (int, error)
	Close() error
}
