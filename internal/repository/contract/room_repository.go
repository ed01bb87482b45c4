package contract

import (
	"context"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"
)

type RoomRepository interface {
	// Ensure inserts the room if it does not exist yet and returns the
	// persisted row either way. Duplicate names are a no-op, not an error.
	Ensure(ctx context.Context, name string) (*entity.Room, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Room, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
