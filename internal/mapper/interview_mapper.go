package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/pkg/interview"

	"gorm.io/datatypes"
)

// InterviewMapper is the serialization boundary for session state: the typed
// interview.State lives in memory, a JSONB blob lives in the row.
type InterviewMapper struct{}

func NewInterviewMapper() *InterviewMapper {
	return &InterviewMapper{}
}

func (m *InterviewMapper) SessionToEntity(s *model.InterviewSession) (*entity.InterviewSession, error) {
	if s == nil {
		return nil, nil
	}

	var state interview.State
	if err := json.Unmarshal(s.SessionData, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", s.Id, err)
	}
	if !state.Step.Valid() {
		return nil, fmt.Errorf("decode session %s: unknown step %q", s.Id, state.Step)
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.InterviewSession{
		Id:          s.Id,
		State:       state,
		IsCompleted: s.IsCompleted,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func (m *InterviewMapper) SessionToModel(s *entity.InterviewSession) (*model.InterviewSession, error) {
	if s == nil {
		return nil, nil
	}

	data, err := json.Marshal(s.State)
	if err != nil {
		return nil, fmt.Errorf("encode session %s: %w", s.Id, err)
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.InterviewSession{
		Id:          s.Id,
		SessionData: datatypes.JSON(data),
		IsCompleted: s.IsCompleted,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAt,
	}, nil
}
