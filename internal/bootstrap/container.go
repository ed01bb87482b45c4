package bootstrap

import (
	"context"
	"log"
	"time"

	"furniture-catalog-be/internal/config"
	"furniture-catalog-be/internal/controller"
	"furniture-catalog-be/internal/pkg/logger"
	"furniture-catalog-be/internal/pkg/mailer"
	"furniture-catalog-be/internal/repository/unitofwork"
	"furniture-catalog-be/internal/service"
	"furniture-catalog-be/internal/websocket"

	pktNats "furniture-catalog-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	InterviewController controller.IInterviewController
	CatalogController   controller.ICatalogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	// Logging facade
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsHub := websocket.NewHub(rdb, sysLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Interview.EventTopic, pubSub)

	catalogService := service.NewCatalogService(
		uowFactory,
		time.Duration(cfg.Interview.CatalogCacheTTLSeconds)*time.Second,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Interview.EventTopic,
		catalogService,
		emailService,
		cfg.Interview.SummaryEmail,
		wsHub,
	)

	authService := service.NewAuthService(uowFactory)
	interviewService := service.NewInterviewService(uowFactory, publisherService, natsPub)

	// 4. Controllers
	authController := controller.NewAuthController(authService)
	interviewController := controller.NewInterviewController(interviewService)
	catalogController := controller.NewCatalogController(catalogService, wsHub)

	return &Container{
		AuthController:      authController,
		InterviewController: interviewController,
		CatalogController:   catalogController,
		ConsumerService:     consumerService,
		WebSocketHub:        wsHub,
		Logger:              sysLogger,
	}
}
