// Package barista holds the grounding core of the agent: query analysis,
// catalog ranking, prompt composition and model-response parsing. Everything
// in this package is synchronous and free of I/O so it can run on any
// goroutine without coordination.
package barista

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/kopibdg/barista-rag/models"
)

// Analysis is the normalized signal set extracted from a free-text query.
// Matched tags and areas keep insertion order and set semantics.
type Analysis struct {
	Raw                 string   `json:"raw"`
	Normalized          string   `json:"normalized"`
	MatchedTags         []string `json:"matched_tags"`
	MatchedAreas        []string `json:"matched_areas"`
	WantsRecommendation bool     `json:"wants_recommendation"`
}

func (a Analysis) HasTag(tag string) bool {
	for _, t := range a.MatchedTags {
		if t == tag {
			return true
		}
	}
	return false
}

func (a Analysis) HasArea(area string) bool {
	folded := Fold(area)
	for _, m := range a.MatchedAreas {
		if Fold(m) == folded {
			return true
		}
	}
	return false
}

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases and strips diacritics so that "Café Bérkopi" and
// "cafe berkopi" compare equal.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// tagGroup maps one keyword intent to catalog tags. A group contributes all
// of its tags if any of its patterns matches the folded query.
type tagGroup struct {
	patterns []*regexp.Regexp
	tags     []string
}

func newTagGroup(tags []string, patterns ...string) tagGroup {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return tagGroup{patterns: compiled, tags: tags}
}

var tagGroups = []tagGroup{
	newTagGroup([]string{"work-friendly", "wifi-kencang"}, `kerja`, `nugas`, `skripsi`, `deadline`, `laptop`, `\bwfc\b`, `meeting`),
	newTagGroup([]string{"wifi-kencang"}, `wifi`, `internet`),
	newTagGroup([]string{"budget-friendly"}, `murah`, `hemat`, `terjangkau`, `kantong`),
	newTagGroup([]string{"late-night"}, `malam`, `begadang`, `24 jam`, `larut`),
	newTagGroup([]string{"instagramable"}, `foto`, `aesthetic`, `estetik`, `instagram`, `\big\b`),
	newTagGroup([]string{"family-friendly", "spacious"}, `keluarga`, `\banak\b`, `ramean`, `rombongan`),
	newTagGroup([]string{"outdoor", "scenic-view"}, `\balam\b`, `outdoor`, `pemandangan`, `\bview\b`, `sejuk`, `gunung`),
	newTagGroup([]string{"quiet"}, `tenang`, `\bsepi\b`, `sunyi`, `fokus`),
	newTagGroup([]string{"specialty-coffee"}, `manual brew`, `v60`, `specialty`, `single origin`),
	newTagGroup([]string{"heritage"}, `klasik`, `legendaris`, `heritage`, `jadul`),
}

var intentWords = []string{
	"rekomendasi", "cari", "tempat", "kopi", "cafe", "kafe", "coffee", "ngopi", "dimana", "di mana", "minum",
}

// Analyzer matches queries against a fixed keyword table and the area strings
// declared by the catalog it was built over.
type Analyzer struct {
	areas []string
}

// NewAnalyzer collects the distinct declared areas of the catalog, in catalog
// order, for area matching.
func NewAnalyzer(refs []models.CoffeeShopReference) *Analyzer {
	seen := make(map[string]struct{})
	var areas []string
	for _, ref := range refs {
		for _, area := range ref.Areas {
			key := Fold(area)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			areas = append(areas, area)
		}
	}
	return &Analyzer{areas: areas}
}

// Analyze never fails; on no matches it degrades to empty sets.
func (a *Analyzer) Analyze(query string) Analysis {
	analysis := Analysis{
		Raw:        query,
		Normalized: Fold(query),
	}

	for _, group := range tagGroups {
		for _, pattern := range group.patterns {
			if pattern.MatchString(analysis.Normalized) {
				for _, tag := range group.tags {
					if !analysis.HasTag(tag) {
						analysis.MatchedTags = append(analysis.MatchedTags, tag)
					}
				}
				break
			}
		}
	}

	for _, area := range a.areas {
		if areaMatchesQuery(area, analysis.Normalized) && !analysis.HasArea(area) {
			analysis.MatchedAreas = append(analysis.MatchedAreas, area)
		}
	}

	analysis.WantsRecommendation = len(analysis.MatchedTags) > 0 || len(analysis.MatchedAreas) > 0
	if !analysis.WantsRecommendation {
		for _, word := range intentWords {
			if strings.Contains(analysis.Normalized, word) {
				analysis.WantsRecommendation = true
				break
			}
		}
	}

	return analysis
}

// areaMatchesQuery tests full-string containment first and falls back to
// token containment. Area strings shorter than four characters are skipped
// entirely to avoid false positives.
func areaMatchesQuery(area, foldedQuery string) bool {
	folded := Fold(area)
	if len([]rune(folded)) < 4 {
		return false
	}
	if strings.Contains(foldedQuery, folded) {
		return true
	}
	for _, token := range areaTokens(folded) {
		if strings.Contains(foldedQuery, token) {
			return true
		}
	}
	return false
}

// areaTokens splits a folded area on whitespace and commas, keeping tokens of
// at least four characters.
func areaTokens(folded string) []string {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 4 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
