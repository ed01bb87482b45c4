package unitofwork

import (
	"context"

	"furniture-catalog-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to one transaction. A chat turn's
// catalog writes and session update go through a single unit so a failed
// write rolls the whole turn back.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RoomRepository() contract.RoomRepository
	FurnitureTypeRepository() contract.FurnitureTypeRepository
	ProductConfigRepository() contract.ProductConfigRepository
	InterviewSessionRepository() contract.InterviewSessionRepository
	AdminUserRepository() contract.AdminUserRepository
}
