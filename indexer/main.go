package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kopibdg/barista-rag/config"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	nc, err := NewNats(cfg)
	if err != nil {
		logger.Fatal("connect to nats", zap.Error(err))
	}
	defer nc.Close()

	pg, err := NewPg(cfg.Postgres.ConnStr())
	if err != nil {
		logger.Fatal("connect to postgres", zap.Error(err))
	}

	handler := NewHandler(pg, logger)

	subjectHandlers := map[string]func(ctx context.Context, msg []byte) error{
		cfg.Nats.CatalogSubject: handler.HandleCatalogCDCMessage,
	}

	workers := cfg.Indexer.Workers
	if workers < 1 {
		workers = 2
	}
	queueSize := cfg.Indexer.QueueSize
	if queueSize < 1 {
		queueSize = 100
	}
	logger.Info("starting indexer", zap.Int("workers", workers), zap.Int("queueSize", queueSize))

	workerPools := make(map[string]*WorkerPool)
	for subject, h := range subjectHandlers {
		workerPools[subject] = NewWorkerPool(ctx, workers, queueSize, h, logger)
	}

	group := errgroup.Group{}
	errChan := make(chan error)

	for subject, pool := range workerPools {
		group.Go(func() error {
			return nc.Subscribe(ctx, subject, pool)
		})
	}

	go func() {
		errChan <- group.Wait()
	}()

	select {
	case <-shutdown:
		logger.Info("shutting down")
		cancel()
	case err := <-errChan:
		logger.Info("shutting down due to error", zap.Error(err))
		cancel()
	}

	for _, pool := range workerPools {
		pool.Stop()
		pool.Wait()
	}
}
