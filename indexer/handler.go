package main

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/kopibdg/barista-rag/barista"
	"github.com/kopibdg/barista-rag/models"
)

type Handler struct {
	pg  *Pg
	log *zap.Logger
}

func NewHandler(pg *Pg, log *zap.Logger) *Handler {
	return &Handler{
		pg:  pg,
		log: log,
	}
}

// HandleCatalogCDCMessage refreshes the folded search text of a coffee shop
// on receiving a cdc message from nats.
func (h *Handler) HandleCatalogCDCMessage(ctx context.Context, msg []byte) error {
	var data map[string]interface{}

	err := json.Unmarshal(msg, &data)
	if err != nil {
		return err
	}

	id, ok := data["id"].(float64)
	if !ok {
		h.log.Warn("cdc message without numeric id", zap.ByteString("msg", msg))
		return nil
	}
	shopID := uint64(id)

	shop, err := h.pg.GetCoffeeShop(ctx, shopID)
	if err != nil {
		return err
	}

	if err := h.pg.UpdateSearchText(ctx, shopID, SearchText(shop)); err != nil {
		h.log.Warn("update search text", zap.Uint64("id", shopID), zap.Error(err))
	}

	return nil
}

// SearchText folds the reference's prompt form into one lowercase,
// accent-free line for lexical matching.
func SearchText(shop *models.CoffeeShopReference) string {
	return barista.Fold(shop.Stringify())
}
