package implementation

import (
	"context"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/mapper"
	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/internal/repository/contract"
	"furniture-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewProductConfigRepository(db *gorm.DB) contract.ProductConfigRepository {
	return &ProductConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *ProductConfigRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProductConfigRepositoryImpl) Create(ctx context.Context, config *entity.ProductConfig) error {
	m, err := r.mapper.ProductConfigToModel(config)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ProductConfigToEntity(m)
	return nil
}

func (r *ProductConfigRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductConfig, error) {
	var models []*model.ProductConfig
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ProductConfig, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ProductConfigToEntity(m)
	}
	return entities, nil
}

func (r *ProductConfigRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProductConfig{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
