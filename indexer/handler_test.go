package main

import (
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/kopibdg/barista-rag/barista"
	"github.com/kopibdg/barista-rag/models"
)

func TestSearchText(t *testing.T) {
	shop := &models.CoffeeShopReference{
		Name:    "Café Bérkopi",
		Address: "Jl. Braga No.1",
		Mood:    "Tenang",
		Areas:   pq.StringArray{"Braga"},
		Tags:    pq.StringArray{"specialty-coffee"},
	}

	got := SearchText(shop)

	if got != strings.ToLower(got) {
		t.Errorf("search text must be lowercase: %q", got)
	}
	for _, want := range []string{"cafe berkopi", "braga", "tenang", "specialty-coffee"} {
		if !strings.Contains(got, want) {
			t.Errorf("search text missing %q: %q", want, got)
		}
	}
	if strings.ContainsRune(got, 'é') {
		t.Errorf("diacritics must be folded: %q", got)
	}
	if got != barista.Fold(shop.Stringify()) {
		t.Errorf("search text must be the folded prompt form of the reference: %q", got)
	}
}
