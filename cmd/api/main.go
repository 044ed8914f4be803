package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	v1 "github.com/abhikr1871/E-Cell/cmd/api/router/v1"
	cacheadapter "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/adapter"
	cacheport "github.com/abhikr1871/E-Cell/internal/infrastructure/cache/port"
	"github.com/abhikr1871/E-Cell/internal/infrastructure/database"
	"github.com/abhikr1871/E-Cell/internal/infrastructure/logging"
	queueadapter "github.com/abhikr1871/E-Cell/internal/infrastructure/queue/adapter"
	queueport "github.com/abhikr1871/E-Cell/internal/infrastructure/queue/port"
	"github.com/abhikr1871/E-Cell/internal/infrastructure/realtime"
	"github.com/abhikr1871/E-Cell/internal/pkg/auth"
	chatusecase "github.com/abhikr1871/E-Cell/internal/pkg/chat/application/usecase"
	chatrepo "github.com/abhikr1871/E-Cell/internal/pkg/chat/persistence/repository/adapter"
	chatcontroller "github.com/abhikr1871/E-Cell/internal/pkg/chat/presentation/controller"
	chathttp "github.com/abhikr1871/E-Cell/internal/pkg/chat/presentation/http"
	notifusecase "github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
	notifrepo "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/adapter"
	notifcontroller "github.com/abhikr1871/E-Cell/internal/pkg/notification/presentation/controller"
	notifhttp "github.com/abhikr1871/E-Cell/internal/pkg/notification/presentation/http"
	statusrepo "github.com/abhikr1871/E-Cell/internal/repository/adapter"
)

func main() {
	_ = godotenv.Load()

	log, err := logging.NewLogger(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPoolFromEnv(ctx)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.InitializeSchema(ctx, pool); err != nil {
		log.Fatal("schema initialization failed", zap.Error(err))
	}

	// Redis is optional: without it the API runs uncached and the cleanup
	// endpoint reports the queue as unavailable.
	var cache cacheport.Cache
	var queueClient queueport.Client
	if os.Getenv("REDIS_URL") != "" {
		if rc, err := cacheadapter.NewRedisCacheFromEnv(); err != nil {
			log.Warn("cache unavailable", zap.Error(err))
		} else {
			cache = rc
			defer func() { _ = rc.Close() }()
		}
		if qc, err := queueadapter.NewAsynqClientFromEnv(); err != nil {
			log.Warn("task queue unavailable", zap.Error(err))
		} else {
			queueClient = qc
			defer func() { _ = qc.Close() }()
		}
	}

	hub := realtime.NewHub()
	verifier := auth.NewVerifierFromEnv()
	if !verifier.Enforced() {
		log.Warn("CHAT_JWT_SECRET not set, accepting claimed identities")
	}

	conversations := chatrepo.NewPgConversationRepository(pool)
	notifications := notifrepo.NewPgNotificationRepository(pool)
	userStatus := statusrepo.NewPgUserStatusRepository(pool)

	sendMessage := chatusecase.NewSendMessageUseCase(conversations, notifications, hub, cache, log)
	markRead := chatusecase.NewMarkMessageReadUseCase(conversations, cache, log)
	markAllRead := chatusecase.NewMarkAllMessagesReadUseCase(conversations, cache, log)
	history := chatusecase.NewGetChatHistoryUseCase(conversations, log)
	userChats := chatusecase.NewListUserChatsUseCase(conversations, cache, log)
	unreadCount := chatusecase.NewCountUnreadUseCase(conversations, cache, log)

	sendNotification := notifusecase.NewSendNotificationUseCase(notifications, hub, log)
	markNotifRead := notifusecase.NewMarkNotificationReadUseCase(notifications, log)
	markAllNotifsRead := notifusecase.NewMarkAllNotificationsReadUseCase(notifications, log)
	deleteNotif := notifusecase.NewDeleteNotificationUseCase(notifications, log)
	listUnread := notifusecase.NewListUnreadNotificationsUseCase(notifications, log)
	notifStats := notifusecase.NewNotificationStatsUseCase(notifications, log)

	chatControllers := chathttp.Controllers{
		Socket:    chatcontroller.NewChatSocketController(hub, verifier, sendMessage, markRead, userStatus, log),
		History:   chatcontroller.NewGetChatHistoryController(history),
		ChatboxID: chatcontroller.NewGetChatboxIDController(),
		UserChats: chatcontroller.NewListUserChatsController(userChats),
		Unread:    chatcontroller.NewUnreadCountController(unreadCount),
		MarkAll:   chatcontroller.NewMarkAllMessagesReadController(markAllRead),
	}
	notifControllers := notifhttp.Controllers{
		ListUnread: notifcontroller.NewListUnreadNotificationsController(listUnread),
		Stats:      notifcontroller.NewNotificationStatsController(notifStats),
		Create:     notifcontroller.NewCreateNotificationController(sendNotification),
		MarkRead:   notifcontroller.NewMarkNotificationReadController(markNotifRead),
		MarkAll:    notifcontroller.NewMarkAllNotificationsReadController(markAllNotifsRead),
		Delete:     notifcontroller.NewDeleteNotificationController(deleteNotif),
		Cleanup:    notifcontroller.NewCleanupNotificationsController(queueClient, log),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	v1.RegisterRoutes(engine, chatControllers, notifControllers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: engine}

	go func() {
		log.Info("api listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	hub.Close()
}
