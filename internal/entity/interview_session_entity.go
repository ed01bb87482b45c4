package entity

import (
	"time"

	"furniture-catalog-be/pkg/interview"

	"github.com/google/uuid"
)

// InterviewSession is the durable record of one admin's walk through the
// wizard. State is the typed session blob; the mapper serializes it at the
// store boundary.
type InterviewSession struct {
	Id          uuid.UUID
	State       interview.State
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
