package contract

import (
	"context"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
}
