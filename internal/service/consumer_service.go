// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"furniture-catalog-be/internal/dto"
	"furniture-catalog-be/internal/pkg/mailer"
	"furniture-catalog-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	catalogService ICatalogService
	emailService   mailer.IEmailService
	summaryEmail   string
	hub            *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	catalogService ICatalogService,
	emailService mailer.IEmailService,
	summaryEmail string,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		catalogService: catalogService,
		emailService:   emailService,
		summaryEmail:   summaryEmail,
		hub:            hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishInterviewTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interview turn message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing interview turn for session %s", payload.SessionId)

	// Catalog changed, cached reads are stale now.
	if payload.Rooms+payload.FurnitureTypes+payload.ProductConfigs > 0 {
		cs.catalogService.InvalidateCache()

		if cs.hub != nil {
			cs.hub.Broadcast("catalog_updated", map[string]interface{}{
				"session_id":      payload.SessionId,
				"rooms":           payload.Rooms,
				"furniture_types": payload.FurnitureTypes,
				"product_configs": payload.ProductConfigs,
			})
		}
	}

	if payload.Completed {
		if cs.hub != nil {
			cs.hub.Broadcast("interview_completed", map[string]interface{}{
				"session_id": payload.SessionId,
				"summary":    payload.Summary,
			})
		}

		if cs.emailService != nil && cs.summaryEmail != "" {
			if err := cs.emailService.SendInterviewSummary(cs.summaryEmail, payload.SessionId.String(), payload.Summary); err != nil {
				log.Printf("[ERROR] Failed to send interview summary mail: %v", err)
				// Mail is best effort, do not redeliver.
			}
		}
	}

	msg.Ack()
}
