package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/abhikr1871/E-Cell/internal/infrastructure/database"
	"github.com/abhikr1871/E-Cell/internal/infrastructure/logging"
	queueadapter "github.com/abhikr1871/E-Cell/internal/infrastructure/queue/adapter"
	"github.com/abhikr1871/E-Cell/internal/pkg/notification/application/task"
	notifusecase "github.com/abhikr1871/E-Cell/internal/pkg/notification/application/usecase"
	notifrepo "github.com/abhikr1871/E-Cell/internal/pkg/notification/persistence/repository/adapter"
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

	srv, err := queueadapter.NewAsynqServer(log)
	if err != nil {
		log.Fatal("worker setup failed", zap.Error(err))
	}

	purge := notifusecase.NewPurgeNotificationsUseCase(notifrepo.NewPgNotificationRepository(pool), log)
	task.RegisterPurgeNotificationsTask(srv, purge, log)

	log.Info("worker running")
	if err := srv.Run(ctx); err != nil {
		log.Fatal("worker stopped", zap.Error(err))
	}
}
