package implementation

import (
	"context"
	"errors"
	"fmt"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/mapper"
	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/internal/repository/contract"
	"furniture-catalog-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FurnitureTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewFurnitureTypeRepository(db *gorm.DB) contract.FurnitureTypeRepository {
	return &FurnitureTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *FurnitureTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FurnitureTypeRepositoryImpl) Ensure(ctx context.Context, roomId uuid.UUID, name string) (*entity.FurnitureType, error) {
	m := &model.FurnitureType{Id: uuid.New(), RoomId: roomId, Name: name}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(m)
	if res.Error != nil && !isUniqueViolation(res.Error) {
		return nil, res.Error
	}

	if res.Error == nil && res.RowsAffected > 0 {
		return r.mapper.FurnitureTypeToEntity(m), nil
	}

	var existing model.FurnitureType
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND name = ?", roomId, name).
		First(&existing).Error
	if err != nil {
		return nil, fmt.Errorf("furniture type %q vanished after conflict: %w", name, err)
	}
	return r.mapper.FurnitureTypeToEntity(&existing), nil
}

func (r *FurnitureTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FurnitureType, error) {
	var m model.FurnitureType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FurnitureTypeToEntity(&m), nil
}

func (r *FurnitureTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FurnitureType, error) {
	var models []*model.FurnitureType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.FurnitureType, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FurnitureTypeToEntity(m)
	}
	return entities, nil
}

func (r *FurnitureTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FurnitureType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
