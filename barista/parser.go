package barista

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/kopibdg/barista-rag/models"
)

const (
	// RouteStartMarker and RouteEndMarker delimit an embedded coffee-crawl
	// route JSON document inside an otherwise free-text response.
	RouteStartMarker = "[COFFEE_CRAWL_ROUTE]"
	RouteEndMarker   = "[/COFFEE_CRAWL_ROUTE]"

	// SectionSeparator is the marker the model uses between a recommendation
	// list and trailing disclaimer text.
	SectionSeparator = "---"
)

// ParsedResponse is the structured outcome of a single model response: intro
// prose plus at most one of a shop list or a crawl route.
type ParsedResponse struct {
	Intro       string                   `json:"intro"`
	CoffeeShops []models.CoffeeShop      `json:"coffeeShops"`
	Route       *models.CoffeeCrawlRoute `json:"route"`
}

// Parser recovers structure from free-text model output. The model is not
// guaranteed to honor formatting instructions, so extraction is defensive:
// a delimited JSON route is tried first, then markdown shop-pattern
// extraction, then the whole text is treated as prose.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log}
}

// shopHeaderRe matches the start of one recommendation entry: a bolded name,
// the address label and text, and the reason label. The reason body itself is
// delimited manually (RE2 has no lookahead): it runs until the next bolded
// entry, a separator line, or end of input.
var shopHeaderRe = regexp.MustCompile(`\*\*(.+?)\*\*\s*\*Alamat:\*\s*(.+?)\s*\*Alasan:\*\s*`)

var leadingNumberRe = regexp.MustCompile(`^\d+\.\s*`)

func (p *Parser) Parse(text string) ParsedResponse {
	if route, intro, ok := p.parseRoute(&text); ok {
		return ParsedResponse{Intro: intro, Route: route}
	}

	return parseShops(text)
}

// parseRoute extracts the delimited route block. On malformed JSON the block
// is stripped from the text (so marker tokens cannot leak into the intro)
// and parsing falls through to shop extraction.
func (p *Parser) parseRoute(text *string) (*models.CoffeeCrawlRoute, string, bool) {
	start := strings.Index(*text, RouteStartMarker)
	if start < 0 {
		return nil, "", false
	}
	rest := (*text)[start+len(RouteStartMarker):]
	end := strings.Index(rest, RouteEndMarker)
	if end < 0 {
		p.log.Warn("route start marker without end marker", zap.Int("offset", start))
		return nil, "", false
	}

	inner := rest[:end]
	var route models.CoffeeCrawlRoute
	err := json.Unmarshal([]byte(inner), &route)
	if err == nil {
		err = validateRoute(route)
	}
	if err != nil {
		p.log.Warn("malformed coffee crawl route block, falling back to shop extraction", zap.Error(err))
		*text = (*text)[:start] + rest[end+len(RouteEndMarker):]
		return nil, "", false
	}

	return &route, strings.TrimSpace((*text)[:start]), true
}

// validateRoute rejects stops whose time window is inverted. "HH:MM" strings
// compare correctly lexicographically.
func validateRoute(route models.CoffeeCrawlRoute) error {
	for _, stop := range route.Stops {
		if stop.StartTime != "" && stop.EndTime != "" && stop.StartTime > stop.EndTime {
			return fmt.Errorf("stop %q: start time %s after end time %s", stop.Name, stop.StartTime, stop.EndTime)
		}
	}
	return nil
}

func parseShops(text string) ParsedResponse {
	matches := shopHeaderRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return ParsedResponse{Intro: strings.TrimSpace(text)}
	}

	shops := make([]models.CoffeeShop, 0, len(matches))
	var intro strings.Builder

	for i, m := range matches {
		if i == 0 {
			intro.WriteString(text[:m[0]])
		}

		name := strings.TrimSpace(leadingNumberRe.ReplaceAllString(strings.TrimSpace(text[m[2]:m[3]]), ""))
		address := strings.TrimSpace(text[m[4]:m[5]])

		reasonStart := m[1]
		reasonEnd := reasonBoundary(text, reasonStart)
		next := len(text)
		if i+1 < len(matches) {
			next = matches[i+1][0]
			if reasonEnd > next {
				reasonEnd = next
			}
		}

		reason := strings.TrimSpace(strings.ReplaceAll(text[reasonStart:reasonEnd], "*", ""))
		shops = append(shops, models.CoffeeShop{Name: name, Address: address, Reason: reason})

		if i+1 < len(matches) {
			intro.WriteString(text[reasonEnd:next])
		} else {
			intro.WriteString(text[reasonEnd:])
		}
	}

	return ParsedResponse{
		Intro:       strings.TrimSpace(intro.String()),
		CoffeeShops: shops,
	}
}

// reasonBoundary finds where a reason body ends: the next bolded line, the
// next separator line, or the end of the text.
func reasonBoundary(text string, from int) int {
	rest := text[from:]
	end := len(rest)
	if idx := strings.Index(rest, "\n**"); idx >= 0 && idx < end {
		end = idx
	}
	if idx := strings.Index(rest, "\n"+SectionSeparator); idx >= 0 && idx < end {
		end = idx
	}
	return from + end
}

// MeaningfulIntro reports whether an intro is worth displaying: it must be
// non-empty, and if it contains a separator marker the part before the first
// marker must itself be non-empty. This distinguishes a real lead-in sentence
// from a response that is only a trailing disclaimer block.
func MeaningfulIntro(intro string) bool {
	if intro == "" {
		return false
	}
	idx := strings.Index(intro, SectionSeparator)
	if idx < 0 {
		return true
	}
	return strings.TrimSpace(intro[:idx]) != ""
}
