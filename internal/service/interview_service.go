// FILE: internal/service/interview_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"furniture-catalog-be/internal/dto"
	"furniture-catalog-be/internal/entity"
	"furniture-catalog-be/internal/repository/specification"
	"furniture-catalog-be/internal/repository/unitofwork"
	"furniture-catalog-be/pkg/events"
	"furniture-catalog-be/pkg/interview"
	pktNats "furniture-catalog-be/pkg/nats"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound maps to a 404 envelope at the gateway.
	ErrSessionNotFound = errors.New("interview session not found")
	// ErrSessionCompleted marks a session that already reached its terminal
	// step. Completed sessions reject further messages.
	ErrSessionCompleted = errors.New("interview session already completed")
)

type IInterviewService interface {
	Start(ctx context.Context) (*dto.StartInterviewResponse, error)
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ListSessions(ctx context.Context, req *dto.SessionListRequest) ([]*dto.SessionResponse, error)
}

type interviewService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
}

func NewInterviewService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
) IInterviewService {
	return &interviewService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
	}
}

func (s *interviewService) Start(ctx context.Context) (*dto.StartInterviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	state := interview.NewState()
	session := &entity.InterviewSession{
		Id:        uuid.New(),
		State:     state,
		CreatedAt: time.Now(),
	}

	if err := uow.InterviewSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return &dto.StartInterviewResponse{
		SessionId: session.Id,
		Greeting:  interview.Greeting(),
		Progress:  interview.Progress(state),
	}, nil
}

func (s *interviewService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The session read, catalog writes and session update share one
	// transaction so a failed write leaves the wizard exactly where it was.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.InterviewSessionRepository().FindOne(ctx, specification.ByID{ID: req.SessionId})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.IsCompleted {
		return nil, ErrSessionCompleted
	}

	out := interview.Advance(session.State, req.Message)

	counts, err := s.applyWrites(ctx, uow, out.Writes)
	if err != nil {
		return nil, err
	}

	session.State = out.State
	session.IsCompleted = out.Complete
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.InterviewSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishTurn(ctx, session, out, counts)

	return &dto.ChatResponse{
		Reply:    out.Reply,
		Progress: interview.Progress(out.State),
		Complete: out.Complete,
	}, nil
}

type writeCounts struct {
	rooms          int
	furnitureTypes int
	productConfigs int
}

func (s *interviewService) applyWrites(ctx context.Context, uow unitofwork.UnitOfWork, writes []interview.CatalogWrite) (writeCounts, error) {
	var counts writeCounts

	for _, w := range writes {
		switch w.Kind {
		case interview.WriteEnsureRoom:
			if _, err := uow.RoomRepository().Ensure(ctx, w.Room); err != nil {
				return counts, fmt.Errorf("ensure room %q: %w", w.Room, err)
			}
			counts.rooms++

		case interview.WriteEnsureFurnitureType:
			room, err := s.resolveRoom(ctx, uow, w.Room)
			if err != nil {
				return counts, err
			}
			if _, err := uow.FurnitureTypeRepository().Ensure(ctx, room.Id, w.Furniture); err != nil {
				return counts, fmt.Errorf("ensure furniture type %q: %w", w.Furniture, err)
			}
			counts.furnitureTypes++

		case interview.WriteAppendProductConfig:
			room, err := s.resolveRoom(ctx, uow, w.Room)
			if err != nil {
				return counts, err
			}
			furniture, err := uow.FurnitureTypeRepository().FindOne(ctx,
				specification.ByRoomID{RoomID: room.Id},
				specification.ByName{Name: w.Furniture},
			)
			if err != nil {
				return counts, err
			}
			if furniture == nil {
				return counts, fmt.Errorf("furniture type %q not found in room %q", w.Furniture, w.Room)
			}

			config := &entity.ProductConfig{
				Id:              uuid.New(),
				FurnitureTypeId: furniture.Id,
				ConfigName:      fmt.Sprintf("%s - %s", w.Room, w.Furniture),
				Description:     w.Description,
				PriceRange:      "To be extracted",
				DeliveryTime:    "To be extracted",
				IsActive:        true,
				CreatedAt:       time.Now(),
			}
			if err := uow.ProductConfigRepository().Create(ctx, config); err != nil {
				return counts, fmt.Errorf("append product config: %w", err)
			}
			counts.productConfigs++

		default:
			return counts, fmt.Errorf("unknown catalog write kind %q", w.Kind)
		}
	}

	return counts, nil
}

func (s *interviewService) resolveRoom(ctx context.Context, uow unitofwork.UnitOfWork, name string) (*entity.Room, error) {
	room, err := uow.RoomRepository().FindOne(ctx, specification.ByNameInsensitive{Name: name})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("room %q not found", name)
	}
	return room, nil
}

// publishTurn fans the turn out after commit. Delivery is best effort; the
// turn already succeeded and a dead broker must not fail it.
func (s *interviewService) publishTurn(ctx context.Context, session *entity.InterviewSession, out interview.Outcome, counts writeCounts) {
	wroteCatalog := counts.rooms+counts.furnitureTypes+counts.productConfigs > 0

	if s.publisherService != nil && (wroteCatalog || out.Complete) {
		msg := dto.PublishInterviewTurnMessage{
			SessionId:      session.Id,
			Completed:      out.Complete,
			Rooms:          counts.rooms,
			FurnitureTypes: counts.furnitureTypes,
			ProductConfigs: counts.productConfigs,
		}
		if out.Complete {
			msg.Summary = interview.Summary(out.State.Learned)
		}
		if msgJson, err := json.Marshal(msg); err == nil {
			if err := s.publisherService.Publish(ctx, msgJson); err != nil {
				fmt.Printf("[WARN] Failed to publish interview turn: %v\n", err)
			}
		}
	}

	if s.eventPublisher != nil {
		if wroteCatalog {
			evt := events.NewCatalogUpdatedEvent(session.Id.String(), counts.rooms, counts.furnitureTypes, counts.productConfigs)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish CATALOG_UPDATED event: %v\n", err)
			}
		}
		if out.Complete {
			evt := events.NewInterviewCompletedEvent(session.Id.String(), interview.Summary(out.State.Learned))
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish INTERVIEW_COMPLETED event: %v\n", err)
			}
		}
	}
}

func (s *interviewService) ListSessions(ctx context.Context, req *dto.SessionListRequest) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if req.Completed {
		specs = append(specs, specification.CompletedSessions{})
	}
	if req.Limit > 0 {
		page := req.Page
		if page < 1 {
			page = 1
		}
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: (page - 1) * req.Limit})
	}

	sessions, err := uow.InterviewSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		item := &dto.SessionResponse{
			Id:          session.Id,
			Step:        string(session.State.Step),
			IsCompleted: session.IsCompleted,
			CreatedAt:   session.CreatedAt.Format(time.RFC3339),
		}
		if session.UpdatedAt != nil {
			item.UpdatedAt = session.UpdatedAt.Format(time.RFC3339)
		}
		res = append(res, item)
	}
	return res, nil
}
