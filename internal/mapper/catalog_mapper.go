package mapper

import (
	"encoding/json"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/model"

	"gorm.io/datatypes"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) RoomToEntity(r *model.Room) *entity.Room {
	if r == nil {
		return nil
	}
	return &entity.Room{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CatalogMapper) RoomToModel(r *entity.Room) *model.Room {
	if r == nil {
		return nil
	}
	return &model.Room{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

func (m *CatalogMapper) FurnitureTypeToEntity(f *model.FurnitureType) *entity.FurnitureType {
	if f == nil {
		return nil
	}
	return &entity.FurnitureType{
		Id:          f.Id,
		RoomId:      f.RoomId,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

func (m *CatalogMapper) FurnitureTypeToModel(f *entity.FurnitureType) *model.FurnitureType {
	if f == nil {
		return nil
	}
	return &model.FurnitureType{
		Id:          f.Id,
		RoomId:      f.RoomId,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
	}
}

// configAttributes is the JSONB payload of a product config. Only the raw
// description is captured at interview time; structured extraction happens
// later, elsewhere.
type configAttributes struct {
	RawDescription string `json:"raw_description"`
}

func (m *CatalogMapper) ProductConfigToEntity(c *model.ProductConfig) *entity.ProductConfig {
	if c == nil {
		return nil
	}

	var attrs configAttributes
	if len(c.Attributes) > 0 {
		_ = json.Unmarshal(c.Attributes, &attrs)
	}

	return &entity.ProductConfig{
		Id:              c.Id,
		FurnitureTypeId: c.FurnitureTypeId,
		ConfigName:      c.ConfigName,
		Description:     attrs.RawDescription,
		PriceRange:      c.PriceRange,
		DeliveryTime:    c.DeliveryTime,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}
}

func (m *CatalogMapper) ProductConfigToModel(c *entity.ProductConfig) (*model.ProductConfig, error) {
	if c == nil {
		return nil, nil
	}

	attrs, err := json.Marshal(configAttributes{RawDescription: c.Description})
	if err != nil {
		return nil, err
	}

	return &model.ProductConfig{
		Id:              c.Id,
		FurnitureTypeId: c.FurnitureTypeId,
		ConfigName:      c.ConfigName,
		Attributes:      datatypes.JSON(attrs),
		Options:         datatypes.JSON([]byte(`{}`)),
		PriceRange:      c.PriceRange,
		DeliveryTime:    c.DeliveryTime,
		IsActive:        c.IsActive,
		CreatedAt:       c.CreatedAt,
	}, nil
}

func (m *CatalogMapper) AdminUserToEntity(u *model.AdminUser) *entity.AdminUser {
	if u == nil {
		return nil
	}
	return &entity.AdminUser{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *CatalogMapper) AdminUserToModel(u *entity.AdminUser) *model.AdminUser {
	if u == nil {
		return nil
	}
	return &model.AdminUser{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}
