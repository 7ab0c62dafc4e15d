package main

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kopibdg/barista-rag/catalog"
	"github.com/kopibdg/barista-rag/config"
)

type CDCMessage struct {
	Table string `json:"table"`
	Kind  string `json:"kind"`
	ID    uint64 `json:"id"`
}

func main() {
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.Postgres.ConnStr()), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect to postgres", zap.Error(err))
	}

	nc, err := nats.Connect(cfg.Nats.ConnStr())
	if err != nil {
		logger.Fatal("connect to nats", zap.Error(err))
	}
	defer nc.Close()

	js, err := nc.JetStream()
	if err != nil {
		logger.Fatal("get jetstream context", zap.Error(err))
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      cfg.Nats.Stream,
		Subjects:  []string{cfg.Nats.CatalogSubject},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
		MaxAge:    time.Hour * 24 * 7,
	})
	if err != nil && !errors.Is(err, nats.ErrStreamNameAlreadyInUse) {
		logger.Fatal("create stream", zap.Error(err))
	}

	// Seed the curated catalog. Existing rows keep their ids so the
	// replication slot does not replay them as fresh inserts.
	seed := catalog.Seed()
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"address", "reason", "areas", "tags", "rating", "mood", "maps_query"}),
	}).Create(&seed).Error
	if err != nil {
		logger.Fatal("seed catalog", zap.Error(err))
	}
	logger.Info("seeded catalog", zap.Int("count", len(seed)))

	var shopIDs []uint64
	if err := db.Table("coffee_shops").Where("search_text IS NULL").Pluck("id", &shopIDs).Error; err != nil {
		logger.Fatal("query unindexed coffee shops", zap.Error(err))
	}
	logger.Info("found unindexed coffee shops", zap.Int("count", len(shopIDs)))

	for _, id := range shopIDs {
		msg := CDCMessage{
			Table: "coffee_shops",
			Kind:  "insert",
			ID:    id,
		}
		data, err := json.Marshal(msg)
		if err != nil {
			logger.Error("marshal message", zap.Error(err))
			continue
		}
		if _, err := js.Publish(cfg.Nats.CatalogSubject, data); err != nil {
			logger.Error("publish coffee shop", zap.Uint64("id", id), zap.Error(err))
			continue
		}
	}

	logger.Info("backfill complete", zap.Int("coffee_shops", len(shopIDs)))
}
