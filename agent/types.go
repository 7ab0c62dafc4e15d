package main

import (
	"github.com/kopibdg/barista-rag/barista"
	"github.com/kopibdg/barista-rag/models"
)

type WebSocketsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type ProcessingResult struct {
	Err error
	Msg WebSocketsMessage
}

type ChatRequest struct {
	Message string `json:"message"`
}

type CrawlRequest struct {
	Query string `json:"query"`
}

type ChatResponse struct {
	Reply       string              `json:"reply"`
	CoffeeShops []models.CoffeeShop `json:"coffeeShops"`
}

type KalcerEvaluateRequest struct {
	Questions []models.KalcerQuestion `json:"questions"`
	Answers   []string                `json:"answers"`
}

type APIKeyRequest struct {
	Key string `json:"key"`
}

// Hotspot is a map-explorer entry: a catalog venue plus its deterministic
// card artwork.
type Hotspot struct {
	Name      string          `json:"name"`
	Address   string          `json:"address"`
	Reason    string          `json:"reason"`
	Rating    float64         `json:"rating"`
	Mood      string          `json:"mood"`
	MapsQuery string          `json:"maps_query"`
	Location  models.Location `json:"location"`
	Art       barista.ArtSpec `json:"art"`
}
