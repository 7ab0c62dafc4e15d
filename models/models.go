package models

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Location struct {
	Lon, Lat float64
}

func NewGeoPoint(lng, lat float64) Location {
	return Location{
		Lon: lng,
		Lat: lat,
	}
}

func (g *Location) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case string:
		var err error
		data, err = hex.DecodeString(v)
		if err != nil {
			return err
		}
	case []byte:
		data = v
	default:
		return fmt.Errorf("expected string or []byte, got %T", value)
	}

	t, err := ewkb.Unmarshal(data)
	if err != nil {
		return err
	}

	if point, ok := t.(*geom.Point); ok {
		g.Lon = point.X()
		g.Lat = point.Y()

		return nil
	}

	return fmt.Errorf("expected Point, got %T", t)
}

func (loc Location) GormDataType() string {
	return "geometry"
}

func (loc Location) GormValue(ctx context.Context, db *gorm.DB) clause.Expr {
	return clause.Expr{
		SQL:  "ST_PointFromText(?)",
		Vars: []interface{}{fmt.Sprintf("POINT(%f %f)", loc.Lon, loc.Lat)},
	}
}

// CoffeeShop is a single recommendation extracted from a model response.
// Score is only assigned by the ranking-aware structured variant; nil sorts last.
type CoffeeShop struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Reason  string   `json:"reason"`
	Score   *float64 `json:"score,omitempty"`
}

type CoffeeCrawlStop struct {
	CoffeeShop
	Description string `json:"description"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

type CoffeeCrawlRoute struct {
	Title    string            `json:"title"`
	Duration string            `json:"duration"`
	Stops    []CoffeeCrawlStop `json:"stops"`
}

// CoffeeShopReference is a catalog entry used to ground model responses.
// The catalog is loaded once at startup and never mutated by the agent.
type CoffeeShopReference struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"uniqueIndex" json:"name"`
	Address    string         `json:"address"`
	Reason     string         `json:"reason"`
	Areas      pq.StringArray `gorm:"type:text[]" json:"areas"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Rating     float64        `json:"rating"`
	Mood       string         `json:"mood"`
	MapsQuery  string         `json:"maps_query"`
	Location   Location       `json:"location"`
	SearchText string         `gorm:"column:search_text" json:"-"`
}

func (r *CoffeeShopReference) TableName() string {
	return "coffee_shops"
}

func (r *CoffeeShopReference) Stringify() string {
	return fmt.Sprintf("Kedai: %s, Alamat: %s, Area: %s, Tags: %s, Rating: %.1f, Suasana: %s",
		r.Name, r.Address, strings.Join(r.Areas, ", "), strings.Join(r.Tags, ", "), r.Rating, r.Mood)
}

type MessageSender string

const (
	SenderUser MessageSender = "user"
	SenderAI   MessageSender = "ai"
)

// ChatMessage is one turn of the persisted conversation history. Messages are
// append-only; the history is only ever cleared wholesale.
type ChatMessage struct {
	ID               string            `json:"id"`
	Sender           MessageSender     `json:"sender"`
	Text             string            `json:"text,omitempty"`
	CoffeeShops      []CoffeeShop      `json:"coffeeShops,omitempty"`
	CoffeeCrawlRoute *CoffeeCrawlRoute `json:"coffeeCrawlRoute,omitempty"`
	RawAIResponse    string            `json:"rawAiResponse,omitempty"`
}

type KalcerQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type KalcerResult struct {
	Score       int    `json:"score"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
