// FILE: internal/service/catalog_service.go
package service

import (
	"context"
	"time"

	"furniture-catalog-be/internal/dto"
	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"
	"furniture-catalog-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	cacheKeyRooms        = "catalog:rooms"
	cacheKeyFurniturePfx = "catalog:furniture:"
	cacheKeyConfigsPfx   = "catalog:configs:"
)

type ICatalogService interface {
	ListRooms(ctx context.Context) ([]*dto.RoomResponse, error)
	GetRoomCatalog(ctx context.Context, roomId uuid.UUID) (*dto.RoomCatalogResponse, error)
	ListProductConfigs(ctx context.Context, furnitureTypeId uuid.UUID) ([]*dto.ProductConfigResponse, error)
	InvalidateCache()
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, cacheTTL time.Duration) ICatalogService {
	// Reads dominate writes by far; a short TTL keeps the feed fresh even
	// if an invalidation is missed.
	c := cache.New(cacheTTL, 10*time.Minute)
	return &catalogService{
		uowFactory: uowFactory,
		cache:      c,
	}
}

func (s *catalogService) ListRooms(ctx context.Context) ([]*dto.RoomResponse, error) {
	if x, found := s.cache.Get(cacheKeyRooms); found {
		return x.([]*dto.RoomResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rooms, err := uow.RoomRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		res = append(res, roomToResponse(room))
	}

	s.cache.Set(cacheKeyRooms, res, cache.DefaultExpiration)
	return res, nil
}

func (s *catalogService) GetRoomCatalog(ctx context.Context, roomId uuid.UUID) (*dto.RoomCatalogResponse, error) {
	key := cacheKeyFurniturePfx + roomId.String()
	if x, found := s.cache.Get(key); found {
		return x.(*dto.RoomCatalogResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := uow.RoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}

	furniture, err := uow.FurnitureTypeRepository().FindAll(ctx,
		specification.ByRoomID{RoomID: roomId},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.RoomCatalogResponse{
		Room:           *roomToResponse(room),
		FurnitureTypes: make([]dto.FurnitureTypeResponse, 0, len(furniture)),
	}
	for _, f := range furniture {
		res.FurnitureTypes = append(res.FurnitureTypes, dto.FurnitureTypeResponse{
			Id:     f.Id,
			RoomId: f.RoomId,
			Name:   f.Name,
		})
	}

	s.cache.Set(key, res, cache.DefaultExpiration)
	return res, nil
}

func (s *catalogService) ListProductConfigs(ctx context.Context, furnitureTypeId uuid.UUID) ([]*dto.ProductConfigResponse, error) {
	key := cacheKeyConfigsPfx + furnitureTypeId.String()
	if x, found := s.cache.Get(key); found {
		return x.([]*dto.ProductConfigResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	configs, err := uow.ProductConfigRepository().FindAll(ctx,
		specification.ByFurnitureTypeID{FurnitureTypeID: furnitureTypeId},
		specification.ActiveConfigs{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ProductConfigResponse, 0, len(configs))
	for _, c := range configs {
		res = append(res, &dto.ProductConfigResponse{
			Id:              c.Id,
			FurnitureTypeId: c.FurnitureTypeId,
			Description:     c.Description,
			IsActive:        c.IsActive,
		})
	}

	s.cache.Set(key, res, cache.DefaultExpiration)
	return res, nil
}

// InvalidateCache drops every cached read. Called by the consumer when a
// chat turn writes to the catalog.
func (s *catalogService) InvalidateCache() {
	s.cache.Flush()
}

func roomToResponse(room *entity.Room) *dto.RoomResponse {
	res := &dto.RoomResponse{
		Id:   room.Id,
		Name: room.Name,
	}
	if room.Description != nil {
		res.Description = *room.Description
	}
	return res
}
