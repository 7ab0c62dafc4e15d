package barista

import (
	"sort"
	"strings"

	"github.com/kopibdg/barista-rag/models"
)

// MaxReferenceCount bounds how many catalog entries are handed to the model
// as grounding context.
const MaxReferenceCount = 12

// keywordBoost adds an extra reward when the query contains a specific
// keyword AND the entry carries the corresponding tag. These stack on top of
// the general tag-match score on purpose: a corroborated signal should win.
type keywordBoost struct {
	keyword string
	tag     string
	bonus   float64
}

var keywordBoosts = []keywordBoost{
	{"murah", "budget-friendly", 2.4},
	{"hemat", "budget-friendly", 2.0},
	{"malam", "late-night", 2.6},
	{"begadang", "late-night", 2.2},
	{"foto", "instagramable", 2.8},
	{"aesthetic", "instagramable", 2.4},
	{"keluarga", "family-friendly", 2.2},
	{"alam", "outdoor", 2.6},
	{"outdoor", "outdoor", 2.0},
	{"kerja", "work-friendly", 2.8},
	{"nugas", "work-friendly", 2.6},
}

// Rank scores every catalog entry against the analysis and returns at most
// MaxReferenceCount entries with unique names, best first. The sort is
// stable, so ties keep catalog order.
func Rank(refs []models.CoffeeShopReference, analysis Analysis) []models.CoffeeShopReference {
	type scored struct {
		ref   models.CoffeeShopReference
		score float64
	}

	entries := make([]scored, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, scored{ref: ref, score: scoreReference(ref, analysis)})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	seen := make(map[string]struct{}, len(entries))
	result := make([]models.CoffeeShopReference, 0, MaxReferenceCount)
	for _, entry := range entries {
		key := Fold(entry.ref.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, entry.ref)
		if len(result) == MaxReferenceCount {
			break
		}
	}

	return result
}

func scoreReference(ref models.CoffeeShopReference, analysis Analysis) float64 {
	score := 0.6 + ref.Rating/5

	query := strings.TrimSpace(analysis.Normalized)
	if query == "" {
		return score
	}

	// Exact mention of the venue dominates every other signal.
	if strings.Contains(query, Fold(ref.Name)) {
		score += 6
	}

	for _, area := range ref.Areas {
		folded := Fold(area)
		if strings.Contains(query, folded) {
			score += 5
		} else if anyTokenContained(folded, query) {
			score += 2.5
		}
		// Cross-reference with the analyzer stacks with the direct match
		// above, rewarding corroborated area signals.
		if analysis.HasArea(area) {
			score += 2.5
		}
	}

	for _, tag := range ref.Tags {
		if analysis.HasTag(tag) {
			score += 3
		}
	}

	if analysis.WantsRecommendation {
		score += 0.6
	}

	for _, boost := range keywordBoosts {
		if strings.Contains(query, boost.keyword) && hasTag(ref, boost.tag) {
			score += boost.bonus
		}
	}

	return score
}

func anyTokenContained(foldedArea, query string) bool {
	for _, token := range areaTokens(foldedArea) {
		if strings.Contains(query, token) {
			return true
		}
	}
	return false
}

func hasTag(ref models.CoffeeShopReference, tag string) bool {
	for _, t := range ref.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
