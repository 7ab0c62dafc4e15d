package barista

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/kopibdg/barista-rag/models"
)

// ParseStructured handles the schema-constrained product variant: the whole
// response must be a JSON document shaped {reply, recommendations?}. Unlike
// the free-text parser there is no prose fallback — an invalid document is a
// fatal error for that call. Invalid entries inside recommendations are
// dropped silently; the surviving list is sorted by score descending with
// missing scores last.
func ParseStructured(text string) (string, []models.CoffeeShop, error) {
	var envelope struct {
		Reply           string          `json:"reply"`
		Recommendations json.RawMessage `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return "", nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	var rawEntries []json.RawMessage
	if len(envelope.Recommendations) > 0 {
		// A non-array recommendations field is treated as absent, not fatal.
		if err := json.Unmarshal(envelope.Recommendations, &rawEntries); err != nil {
			rawEntries = nil
		}
	}

	shops := make([]models.CoffeeShop, 0, len(rawEntries))
	for _, raw := range rawEntries {
		var entry struct {
			Name    string          `json:"name"`
			Address string          `json:"address"`
			Reason  string          `json:"reason"`
			Score   json.RawMessage `json:"score"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		if entry.Name == "" || entry.Address == "" || entry.Reason == "" {
			continue
		}
		shops = append(shops, models.CoffeeShop{
			Name:    entry.Name,
			Address: entry.Address,
			Reason:  entry.Reason,
			Score:   coerceScore(entry.Score),
		})
	}

	sort.SliceStable(shops, func(i, j int) bool {
		return scoreOrInf(shops[i]) > scoreOrInf(shops[j])
	})

	return envelope.Reply, shops, nil
}

// coerceScore accepts a JSON number or a numeric string; anything else, or a
// non-finite value, leaves the score unset.
func coerceScore(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return finiteOrNil(num)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if parsed, err := strconv.ParseFloat(str, 64); err == nil {
			return finiteOrNil(parsed)
		}
	}

	return nil
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func scoreOrInf(shop models.CoffeeShop) float64 {
	if shop.Score == nil {
		return math.Inf(-1)
	}
	return *shop.Score
}
