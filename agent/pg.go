package main

import (
	"context"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kopibdg/barista-rag/models"
)

type Pg struct {
	db *gorm.DB
}

func NewCatalogPg(connStr string) (*Pg, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		},
	)

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	return &Pg{db: db}, nil
}

// LoadReferences reads the full catalog once. The agent treats the result as
// immutable for its whole lifetime.
func (p *Pg) LoadReferences(ctx context.Context) ([]models.CoffeeShopReference, error) {
	var refs []models.CoffeeShopReference
	if err := p.db.WithContext(ctx).Order("id").Find(&refs).Error; err != nil {
		return nil, err
	}
	return refs, nil
}
