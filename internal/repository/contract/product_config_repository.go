package contract

import (
	"context"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"
)

type ProductConfigRepository interface {
	// Create appends a config row. Re-detailing the same furniture adds
	// another row; there is no dedup.
	Create(ctx context.Context, config *entity.ProductConfig) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductConfig, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
