package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByNameInsensitive matches a name column case-insensitively. Room lookups
// use this; furniture lookups deliberately do not.
type ByNameInsensitive struct {
	Name string
}

func (s ByNameInsensitive) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) = LOWER(?)", s.Name)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ByRoomID struct {
	RoomID uuid.UUID
}

func (s ByRoomID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_id = ?", s.RoomID)
}

type ByFurnitureTypeID struct {
	FurnitureTypeID uuid.UUID
}

func (s ByFurnitureTypeID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("furniture_type_id = ?", s.FurnitureTypeID)
}

type ActiveConfigs struct{}

func (s ActiveConfigs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type CompletedSessions struct{}

func (s CompletedSessions) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_completed = ?", true)
}
