package dto

import "github.com/google/uuid"

type StartInterviewResponse struct {
	SessionId uuid.UUID `json:"session_id"`
	Greeting  string    `json:"greeting"`
	Progress  string    `json:"progress"`
}

type ChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Message   string    `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply    string `json:"reply"`
	Progress string `json:"progress"`
	Complete bool   `json:"complete"`
}

type SessionListRequest struct {
	Page      int  `query:"page"`
	Limit     int  `query:"limit"`
	Completed bool `query:"completed"`
}

// PublishInterviewTurnMessage rides the in-process event bus after a chat
// turn that wrote to the catalog or completed the interview.
type PublishInterviewTurnMessage struct {
	SessionId      uuid.UUID `json:"session_id"`
	Completed      bool      `json:"completed"`
	Summary        string    `json:"summary,omitempty"`
	Rooms          int       `json:"rooms"`
	FurnitureTypes int       `json:"furniture_types"`
	ProductConfigs int       `json:"product_configs"`
}

type SessionResponse struct {
	Id          uuid.UUID `json:"id"`
	Step        string    `json:"step"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at,omitempty"`
}
