package model

import (
	"time"

	"github.com/google/uuid"
)

type FurnitureType struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RoomId      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_furniture_types_room_name"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_furniture_types_room_name"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`

	Room *Room `gorm:"foreignKey:RoomId;constraint:OnDelete:CASCADE"`
}

func (FurnitureType) TableName() string {
	return "furniture_types"
}
