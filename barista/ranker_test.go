package barista

import (
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/kopibdg/barista-rag/models"
)

func TestRankAreaAndTagMatchWins(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "Plain Kopi", Areas: pq.StringArray{"Buah Batu"}, Tags: pq.StringArray{"quiet"}, Rating: 4.5},
		{Name: "Masagi Koffee", Areas: pq.StringArray{"Dago"}, Tags: pq.StringArray{"work-friendly"}, Rating: 4.5},
	}
	analyzer := NewAnalyzer(refs)
	analysis := analyzer.Analyze("kopi enak buat kerja di dago")

	ranked := Rank(refs, analysis)
	if len(ranked) != 2 {
		t.Fatalf("expected both entries, got %d", len(ranked))
	}
	if ranked[0].Name != "Masagi Koffee" {
		t.Errorf("entry matching queried area and tag must rank first, got %q", ranked[0].Name)
	}
}

func TestRankNameMentionDominates(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "Sejiwa Coffee", Areas: pq.StringArray{"Progo"}, Tags: pq.StringArray{"instagramable"}, Rating: 4.7},
		{Name: "Kineruku", Areas: pq.StringArray{"Hegarmanah"}, Tags: pq.StringArray{"quiet"}, Rating: 4.2},
	}
	analyzer := NewAnalyzer(refs)

	ranked := Rank(refs, analyzer.Analyze("gimana kineruku, bagus ga?"))
	if ranked[0].Name != "Kineruku" {
		t.Errorf("named venue must rank first despite lower rating, got %q", ranked[0].Name)
	}
}

func TestRankEmptyQueryOrdersByRating(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "Low", Rating: 4.0},
		{Name: "High", Rating: 4.8},
		{Name: "Mid", Rating: 4.4},
	}
	analyzer := NewAnalyzer(refs)

	ranked := Rank(refs, analyzer.Analyze(""))
	want := []string{"High", "Mid", "Low"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("position %d = %q, want %q", i, ranked[i].Name, name)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{Name: "First", Rating: 4.5},
		{Name: "Second", Rating: 4.5},
		{Name: "Third", Rating: 4.5},
	}
	analyzer := NewAnalyzer(refs)

	ranked := Rank(refs, analyzer.Analyze("kopi"))
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if ranked[i].Name != name {
			t.Fatalf("ties must keep catalog order, position %d = %q", i, ranked[i].Name)
		}
	}
}

func TestRankBoundAndUniqueNames(t *testing.T) {
	var refs []models.CoffeeShopReference
	for i := 0; i < 20; i++ {
		refs = append(refs, models.CoffeeShopReference{
			Name:   fmt.Sprintf("Kopi %d", i),
			Rating: 4.0,
		})
	}
	// Same venue listed twice with different casing.
	refs = append(refs, models.CoffeeShopReference{Name: "kopi 0", Rating: 5.0})

	analyzer := NewAnalyzer(refs)
	ranked := Rank(refs, analyzer.Analyze("ngopi"))

	if len(ranked) > MaxReferenceCount {
		t.Fatalf("got %d entries, max is %d", len(ranked), MaxReferenceCount)
	}

	seen := make(map[string]bool)
	for _, ref := range ranked {
		key := Fold(ref.Name)
		if seen[key] {
			t.Fatalf("duplicate name %q in ranked output", ref.Name)
		}
		seen[key] = true
	}
}

func TestRankKeywordBoostStacks(t *testing.T) {
	withTag := models.CoffeeShopReference{Name: "Hemat Kopi", Tags: pq.StringArray{"budget-friendly"}, Rating: 4.0}
	without := models.CoffeeShopReference{Name: "Mahal Kopi", Tags: pq.StringArray{"quiet"}, Rating: 4.0}
	analyzer := NewAnalyzer([]models.CoffeeShopReference{withTag, without})
	analysis := analyzer.Analyze("kopi murah")

	boosted := scoreReference(withTag, analysis)
	plain := scoreReference(without, analysis)

	// Tag match (+3) plus the murah keyword boost (+2.4).
	if diff := boosted - plain; diff < 5.0 {
		t.Errorf("boost difference = %.2f, expected tag score and keyword boost to stack", diff)
	}
}
