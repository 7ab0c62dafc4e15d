package main

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kopibdg/barista-rag/models"
)

type Pg struct {
	db *gorm.DB
}

func NewPg(connString string) (*Pg, error) {
	db, err := gorm.Open(postgres.Open(connString), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Pg{
		db: db,
	}, nil
}

func (p *Pg) GetCoffeeShop(ctx context.Context, shopID uint64) (*models.CoffeeShopReference, error) {
	var shop models.CoffeeShopReference
	if err := p.db.WithContext(ctx).Omit("location").Find(&shop, "id = ?", shopID).Error; err != nil {
		return nil, err
	}

	return &shop, nil
}

func (p *Pg) UpdateSearchText(ctx context.Context, shopID uint64, text string) error {
	return p.db.WithContext(ctx).Model(&models.CoffeeShopReference{}).Where("id = ?", shopID).Update("search_text", text).Error
}
