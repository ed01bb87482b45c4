package mapper

import (
	"testing"
	"time"

	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/pkg/interview"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewInterviewMapper()

	state := interview.NewState()
	state.Step = interview.StepFurnitureDetails
	state.Learned.Rooms = []string{"Living Room", "Bedroom"}
	state.Learned.FurnitureByRoom = map[string][]string{
		"Living Room": {"Sofa", "Coffee Table"},
	}
	state.CurrentRoom = "Living Room"
	state.CurrentFurniture = "Sofa"

	now := time.Now().Truncate(time.Second)
	session := &entity.InterviewSession{
		Id:        uuid.New(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: &now,
	}

	row, err := m.SessionToModel(session)
	assert.NoError(t, err)
	assert.Equal(t, session.Id, row.Id)
	assert.False(t, row.IsCompleted)

	back, err := m.SessionToEntity(row)
	assert.NoError(t, err)
	assert.Equal(t, state, back.State)
	assert.Equal(t, session.Id, back.Id)
}

func TestSessionToEntityRejectsUnknownStep(t *testing.T) {
	m := NewInterviewMapper()

	row := &model.InterviewSession{
		Id:          uuid.New(),
		SessionData: datatypes.JSON([]byte(`{"step":"daydreaming","learned_data":{"rooms":[],"furniture_by_room":{}}}`)),
		CreatedAt:   time.Now(),
	}

	_, err := m.SessionToEntity(row)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestSessionToEntityRejectsMalformedBlob(t *testing.T) {
	m := NewInterviewMapper()

	row := &model.InterviewSession{
		Id:          uuid.New(),
		SessionData: datatypes.JSON([]byte(`{not json`)),
		CreatedAt:   time.Now(),
	}

	_, err := m.SessionToEntity(row)
	assert.Error(t, err)
}
