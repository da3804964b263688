package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/askhatir/lms-service/config"
	"github.com/askhatir/lms-service/internal/handler"
	"github.com/askhatir/lms-service/internal/repository"
	"github.com/askhatir/lms-service/internal/server"
	"github.com/askhatir/lms-service/internal/service"
	"github.com/askhatir/lms-service/migrations"
	"github.com/askhatir/lms-service/pkg/kafka"
	"github.com/askhatir/lms-service/pkg/logger"
	"github.com/askhatir/lms-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lms")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %w", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka.NewProducer %w", err)
	}
	svc := service.NewService(repo, handler.NewEnqueuer(producer), cfg.Library, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.ActivityConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka.NewConsumer %w", err)
	}

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	g, gCtx := errgroup.WithContext(consumeCtx)
	g.Go(func() error {
		kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.RecordEvent, log), kafka.ActivityTopic)
		return nil
	})

	h := handler.New(svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}

	stopConsume()
	if err = g.Wait(); err != nil {
		log.Error("consumer stop", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
