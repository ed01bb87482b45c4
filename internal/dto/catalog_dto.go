package dto

import "github.com/google/uuid"

type RoomResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

type FurnitureTypeResponse struct {
	Id     uuid.UUID `json:"id"`
	RoomId uuid.UUID `json:"room_id"`
	Name   string    `json:"name"`
}

type ProductConfigResponse struct {
	Id              uuid.UUID `json:"id"`
	FurnitureTypeId uuid.UUID `json:"furniture_type_id"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
}

type RoomCatalogResponse struct {
	Room           RoomResponse            `json:"room"`
	FurnitureTypes []FurnitureTypeResponse `json:"furniture_types"`
}
