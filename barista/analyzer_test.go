package barista

import (
	"reflect"
	"testing"

	"github.com/lib/pq"

	"github.com/kopibdg/barista-rag/models"
)

func testCatalog() []models.CoffeeShopReference {
	return []models.CoffeeShopReference{
		{Name: "Masagi Koffee", Areas: pq.StringArray{"Dago", "Dipatiukur"}, Tags: pq.StringArray{"work-friendly", "wifi-kencang"}, Rating: 4.5},
		{Name: "Kopi Anjis", Areas: pq.StringArray{"Cihapit"}, Tags: pq.StringArray{"budget-friendly"}, Rating: 4.3},
		{Name: "Armor Kopi", Areas: pq.StringArray{"Dago Pakar"}, Tags: pq.StringArray{"outdoor", "scenic-view"}, Rating: 4.4},
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Café Bérkopi", "cafe berkopi"},
		{"DAGO", "dago"},
		{"kopi  enak", "kopi  enak"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnalyzeTags(t *testing.T) {
	analyzer := NewAnalyzer(testCatalog())

	tests := []struct {
		name  string
		query string
		tags  []string
	}{
		{"work intent", "tempat buat kerja", []string{"work-friendly", "wifi-kencang"}},
		{"wfc word boundary", "mau wfc hari ini", []string{"work-friendly", "wifi-kencang"}},
		{"wfc inside word does not match", "wfcafe", nil},
		{"budget", "kopi murah meriah", []string{"budget-friendly"}},
		{"late night", "yang buka malam buat begadang", []string{"late-night"}},
		{"instagram short form", "yang bagus buat ig", []string{"instagramable"}},
		{"ignition is not ig", "ignition", nil},
		{"outdoor nature", "suasana alam yang sejuk", []string{"outdoor", "scenic-view"}},
		{"anak word boundary", "bawa anak kecil", []string{"family-friendly", "spacious"}},
		{"kanak inside word does not match family", "kekanakan", nil},
		{"no tags", "halo apa kabar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.query)
			if !reflect.DeepEqual(got.MatchedTags, tt.tags) {
				t.Errorf("MatchedTags = %v, want %v", got.MatchedTags, tt.tags)
			}
		})
	}
}

func TestAnalyzeAreas(t *testing.T) {
	analyzer := NewAnalyzer(testCatalog())

	tests := []struct {
		name  string
		query string
		areas []string
	}{
		{"full area", "ngopi di dipatiukur dong", []string{"Dipatiukur"}},
		{"token of multiword area", "cafe sekitar pakar", []string{"Dago Pakar"}},
		{"area with diacritics in query", "rekomendasi di Cihapít", []string{"Cihapit"}},
		{"both dago areas", "kopi enak di dago", []string{"Dago", "Dago Pakar"}},
		{"no area", "kopi murah", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.query)
			if !reflect.DeepEqual(got.MatchedAreas, tt.areas) {
				t.Errorf("MatchedAreas = %v, want %v", got.MatchedAreas, tt.areas)
			}
		})
	}
}

func TestAnalyzeShortAreasSkipped(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "Tiny", Areas: pq.StringArray{"Itb"}},
	}
	analyzer := NewAnalyzer(refs)

	got := analyzer.Analyze("kopi deket itb")
	if len(got.MatchedAreas) != 0 {
		t.Errorf("areas shorter than four runes must never match, got %v", got.MatchedAreas)
	}
}

func TestWantsRecommendation(t *testing.T) {
	analyzer := NewAnalyzer(testCatalog())

	tests := []struct {
		query string
		want  bool
	}{
		{"rekomendasi dong", true},
		{"lagi di dago nih", true},
		{"butuh tempat nugas", true},
		{"halo, apa kabar?", false},
		{"", false},
	}

	for _, tt := range tests {
		got := analyzer.Analyze(tt.query)
		if got.WantsRecommendation != tt.want {
			t.Errorf("Analyze(%q).WantsRecommendation = %v, want %v", tt.query, got.WantsRecommendation, tt.want)
		}
	}
}

func TestAnalyzeEmptyQuery(t *testing.T) {
	analyzer := NewAnalyzer(testCatalog())

	got := analyzer.Analyze("")
	if got.Raw != "" || got.Normalized != "" {
		t.Errorf("empty query should stay empty, got %+v", got)
	}
	if len(got.MatchedTags) != 0 || len(got.MatchedAreas) != 0 || got.WantsRecommendation {
		t.Errorf("empty query must not match anything, got %+v", got)
	}
}

func TestAnalyzerDedupesAreas(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "A", Areas: pq.StringArray{"Braga"}},
		{Name: "B", Areas: pq.StringArray{"braga"}},
	}
	analyzer := NewAnalyzer(refs)

	got := analyzer.Analyze("jalan jalan di braga")
	if len(got.MatchedAreas) != 1 {
		t.Fatalf("folded-equal areas must be deduplicated, got %v", got.MatchedAreas)
	}
	if got.MatchedAreas[0] != "Braga" {
		t.Errorf("first declared spelling wins, got %q", got.MatchedAreas[0])
	}
}
