package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductConfig struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FurnitureTypeId uuid.UUID      `gorm:"type:uuid;not null;index"`
	ConfigName      string         `gorm:"type:varchar(200);not null"`
	Attributes      datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Options         datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	PriceRange      string         `gorm:"type:varchar(100)"`
	DeliveryTime    string         `gorm:"type:varchar(50)"`
	Customizations  *string        `gorm:"type:text"`
	IsActive        bool           `gorm:"not null;default:true"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`

	FurnitureType *FurnitureType `gorm:"foreignKey:FurnitureTypeId;constraint:OnDelete:CASCADE"`
}

func (ProductConfig) TableName() string {
	return "product_configs"
}
