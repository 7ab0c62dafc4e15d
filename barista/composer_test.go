package barista

import (
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/kopibdg/barista-rag/models"
)

func TestJoinNatural(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"Dago"}, "Dago"},
		{[]string{"Dago", "Braga"}, "Dago dan Braga"},
		{[]string{"Dago", "Braga", "Cihapit"}, "Dago, Braga dan Cihapit"},
	}

	for _, tt := range tests {
		if got := JoinNatural(tt.items); got != tt.want {
			t.Errorf("JoinNatural(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}

func TestComposePromptDeterministic(t *testing.T) {
	refs := testCatalog()
	analyzer := NewAnalyzer(refs)
	analysis := analyzer.Analyze("tempat nugas di dago")

	first := ComposePrompt(analysis, refs, "tempat nugas di dago")
	second := ComposePrompt(analysis, refs, "tempat nugas di dago")
	if first != second {
		t.Fatal("identical inputs must produce byte-identical prompts")
	}
}

func TestComposePromptContent(t *testing.T) {
	refs := []models.CoffeeShopReference{
		{
			Name:      "Masagi Koffee",
			Address:   "Jl. Dipatiukur No.5",
			Reason:    "Kopinya konsisten",
			Areas:     pq.StringArray{"Dago"},
			Tags:      pq.StringArray{"work-friendly"},
			Rating:    4.5,
			Mood:      "tenang",
			MapsQuery: "Masagi Koffee Bandung",
		},
	}
	analyzer := NewAnalyzer(refs)
	analysis := analyzer.Analyze("tempat kerja di dago")

	prompt := ComposePrompt(analysis, refs, "tempat kerja di dago")

	for _, want := range []string{
		"Pengguna menyebut area Dago.",
		"cocok untuk bekerja atau nugas",
		"1. Masagi Koffee — Jl. Dipatiukur No.5",
		"Rating: 4.5",
		"Maps: Masagi Koffee Bandung",
		"Pesan pengguna: tempat kerja di dago",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q\n%s", want, prompt)
		}
	}
}

func TestComposePromptLiteralUserMessage(t *testing.T) {
	refs := testCatalog()
	analyzer := NewAnalyzer(refs)
	message := "cari *kopi* dengan — karakter | aneh\n dan baris baru"

	prompt := ComposePrompt(analyzer.Analyze(message), refs, message)
	if !strings.Contains(prompt, "Pesan pengguna: "+message) {
		t.Error("user message must be embedded verbatim")
	}
}

func TestComposePromptNoSignals(t *testing.T) {
	refs := testCatalog()
	analyzer := NewAnalyzer(refs)

	prompt := ComposePrompt(analyzer.Analyze("halo"), refs, "halo")
	if strings.Contains(prompt, "Pengguna menyebut area") {
		t.Error("area guidance must be omitted without matched areas")
	}
	if strings.Contains(prompt, "Pengguna mencari tempat yang") {
		t.Error("tag guidance must be omitted without matched tags")
	}
}
