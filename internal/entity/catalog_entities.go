package entity

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	Id          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

type FurnitureType struct {
	Id          uuid.UUID
	RoomId      uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

type ProductConfig struct {
	Id              uuid.UUID
	FurnitureTypeId uuid.UUID
	ConfigName      string
	Description     string
	PriceRange      string
	DeliveryTime    string
	IsActive        bool
	CreatedAt       time.Time
}
