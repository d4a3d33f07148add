package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/alumnet/backend/internal/pkg/config"
	"github.com/alumnet/backend/internal/pkg/database"
	"github.com/alumnet/backend/internal/pkg/logger"
	"github.com/alumnet/backend/internal/pkg/middleware"
	"github.com/alumnet/backend/internal/pkg/notify"
	nsqpkg "github.com/alumnet/backend/internal/pkg/nsq"
	"github.com/alumnet/backend/internal/pkg/server"
	"github.com/alumnet/backend/internal/pkg/sms"
	"github.com/alumnet/backend/internal/pkg/storage"
	wspkg "github.com/alumnet/backend/internal/pkg/websocket"
	albumHTTP "github.com/alumnet/backend/services/albums/handler/http"
	albumRepo "github.com/alumnet/backend/services/albums/repository"
	albumUC "github.com/alumnet/backend/services/albums/usecase"
	authHTTP "github.com/alumnet/backend/services/auth/handler/http"
	authRepo "github.com/alumnet/backend/services/auth/repository"
	authUC "github.com/alumnet/backend/services/auth/usecase"
	eventHTTP "github.com/alumnet/backend/services/events/handler/http"
	eventRepo "github.com/alumnet/backend/services/events/repository"
	eventUC "github.com/alumnet/backend/services/events/usecase"
	groupHTTP "github.com/alumnet/backend/services/groups/handler/http"
	groupRepo "github.com/alumnet/backend/services/groups/repository"
	groupUC "github.com/alumnet/backend/services/groups/usecase"
	"github.com/alumnet/backend/services/notifications/consumer"
	wsHandler "github.com/alumnet/backend/services/notifications/handler/ws"
	postHTTP "github.com/alumnet/backend/services/posts/handler/http"
	postRepo "github.com/alumnet/backend/services/posts/repository"
	postUC "github.com/alumnet/backend/services/posts/usecase"
	userHTTP "github.com/alumnet/backend/services/users/handler/http"
	userRepo "github.com/alumnet/backend/services/users/repository"
	userUC "github.com/alumnet/backend/services/users/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	cfg := config.InitConfig(configPath)

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	appLogger.InfoF("Starting application",
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("environment", cfg.App.Environment))

	postgresClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.FatalF("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.FatalF("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsqpkg.NewProducer(cfg.NSQ.NSQDAddress)
	if err != nil {
		appLogger.FatalF("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	mediaStore, err := storage.NewMinioStore(cfg.Minio)
	if err != nil {
		appLogger.FatalF("Failed to connect to object storage", logger.Err(err))
	}

	db := postgresClient.GetDB()
	notifier := notify.NewNSQPublisher(producer, notify.TopicNotifications)

	// Repositories
	authRepository := authRepo.NewAuthRepo(cfg, db)
	userRepository := userRepo.NewUserRepo(cfg, db)
	postRepository := postRepo.NewPostRepo(cfg, db)
	groupRepository := groupRepo.NewGroupRepo(cfg, db)
	eventRepository := eventRepo.NewEventRepo(cfg, db)
	albumRepository := albumRepo.NewAlbumRepo(cfg, db)

	// Usecases
	authUsecase := authUC.NewAuthUC(authRepository, sms.NewLogDispatcher(), cfg)
	userUsecase := userUC.NewUserUC(userRepository, mediaStore, notifier)
	postUsecase := postUC.NewPostUC(postRepository, mediaStore, notifier)
	groupUsecase := groupUC.NewGroupUC(groupRepository)
	eventUsecase := eventUC.NewEventUC(eventRepository, notifier)
	albumUsecase := albumUC.NewAlbumUC(albumRepository, mediaStore, notifier)

	// Websocket fan-out for notifications
	wsManager := wspkg.NewManager(cfg.JWT)
	dispatcher := consumer.NewDispatcher(wsManager)

	notifConsumer, err := nsqpkg.NewConsumer(
		notify.TopicNotifications, cfg.NSQ.Channel, cfg.NSQ.NSQDAddress,
		dispatcher.HandleMessage)
	if err != nil {
		appLogger.FatalF("Failed to start notification consumer", logger.Err(err))
	}
	defer notifConsumer.Stop()

	// Handlers
	handlers := routeHandlers{
		auth:   authHTTP.NewAuthHandler(authUsecase, cfg.App.Debug),
		users:  userHTTP.NewUserHandler(userUsecase),
		posts:  postHTTP.NewPostHandler(postUsecase),
		groups: groupHTTP.NewGroupHandler(groupUsecase),
		events: eventHTTP.NewEventHandler(eventUsecase),
		albums: albumHTTP.NewAlbumHandler(albumUsecase),
		ws:     wsHandler.NewWSHandler(wsManager, groupRepository),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))

	registerRoutes(e, cfg, redisClient.GetClient(), handlers)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port, shutdownTimeout(cfg))
	if err := srv.Start(); err != nil {
		appLogger.FatalF("Server error", logger.Err(err))
	}
}
