package contract

import (
	"context"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FurnitureTypeRepository interface {
	// Ensure inserts the furniture type under the room if absent and returns
	// the persisted row. Names are unique per room, case-sensitively.
	Ensure(ctx context.Context, roomId uuid.UUID, name string) (*entity.FurnitureType, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FurnitureType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FurnitureType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
