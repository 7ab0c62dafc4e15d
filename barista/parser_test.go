package barista

import (
	"strings"
	"testing"
)

func TestParseSingleShop(t *testing.T) {
	p := NewParser(nil)

	got := p.Parse("**Kopi Anjis**\n*Alamat:* Jl. Bengawan No.34\n*Alasan:* Enak dan murah")

	if got.Route != nil {
		t.Fatal("no route expected")
	}
	if len(got.CoffeeShops) != 1 {
		t.Fatalf("expected one shop, got %d", len(got.CoffeeShops))
	}
	shop := got.CoffeeShops[0]
	if shop.Name != "Kopi Anjis" {
		t.Errorf("Name = %q", shop.Name)
	}
	if shop.Address != "Jl. Bengawan No.34" {
		t.Errorf("Address = %q", shop.Address)
	}
	if shop.Reason != "Enak dan murah" {
		t.Errorf("Reason = %q", shop.Reason)
	}
	if got.Intro != "" {
		t.Errorf("Intro = %q, want empty", got.Intro)
	}
}

func TestParseMultipleShopsWithIntro(t *testing.T) {
	p := NewParser(nil)

	text := "Tentu! Ini beberapa pilihan:\n\n" +
		"**1. Kopi Anjis**\n*Alamat:* Jl. Bengawan No.34\n*Alasan:* Enak dan murah\n\n" +
		"**2. Sejiwa Coffee**\n*Alamat:* Jl. Progo No.15\n*Alasan:* Tempatnya estetik\n\n" +
		"---\nSemoga membantu ya!"

	got := p.Parse(text)
	if len(got.CoffeeShops) != 2 {
		t.Fatalf("expected two shops, got %d", len(got.CoffeeShops))
	}
	if got.CoffeeShops[0].Name != "Kopi Anjis" {
		t.Errorf("leading numbers must be stripped, got %q", got.CoffeeShops[0].Name)
	}
	if got.CoffeeShops[1].Name != "Sejiwa Coffee" {
		t.Errorf("second shop = %q", got.CoffeeShops[1].Name)
	}
	if got.CoffeeShops[1].Reason != "Tempatnya estetik" {
		t.Errorf("reason must stop at the separator line, got %q", got.CoffeeShops[1].Reason)
	}
	if !strings.HasPrefix(got.Intro, "Tentu! Ini beberapa pilihan:") {
		t.Errorf("Intro = %q", got.Intro)
	}
}

func TestParseRoute(t *testing.T) {
	p := NewParser(nil)

	text := "Tentu, ini rutenya:" + RouteStartMarker +
		`{"title":"X","duration":"2 jam","stops":[]}` + RouteEndMarker

	got := p.Parse(text)
	if got.Route == nil {
		t.Fatal("expected a route")
	}
	if got.Route.Title != "X" {
		t.Errorf("Title = %q", got.Route.Title)
	}
	if got.Route.Duration != "2 jam" {
		t.Errorf("Duration = %q", got.Route.Duration)
	}
	if len(got.CoffeeShops) != 0 {
		t.Errorf("route response must not also carry shops, got %d", len(got.CoffeeShops))
	}
	if got.Intro != "Tentu, ini rutenya:" {
		t.Errorf("Intro = %q", got.Intro)
	}
}

func TestParseRouteWithStops(t *testing.T) {
	p := NewParser(nil)

	text := RouteStartMarker + `{
		"title": "Dago Crawl",
		"duration": "3 jam",
		"stops": [
			{"name": "Armor Kopi", "address": "Dago Pakar", "description": "Mulai dari atas", "startTime": "09:00", "endTime": "10:30"}
		]
	}` + RouteEndMarker

	got := p.Parse(text)
	if got.Route == nil {
		t.Fatal("expected a route")
	}
	if len(got.Route.Stops) != 1 {
		t.Fatalf("expected one stop, got %d", len(got.Route.Stops))
	}
	stop := got.Route.Stops[0]
	if stop.Name != "Armor Kopi" || stop.StartTime != "09:00" || stop.EndTime != "10:30" {
		t.Errorf("stop = %+v", stop)
	}
}

func TestParseMalformedRouteFallsBackToShops(t *testing.T) {
	p := NewParser(nil)

	text := "Ini dia:" + RouteStartMarker + `{not json` + RouteEndMarker +
		"\n**Kopi Anjis**\n*Alamat:* Jl. Bengawan No.34\n*Alasan:* Enak"

	got := p.Parse(text)
	if got.Route != nil {
		t.Fatal("malformed route must not be returned")
	}
	if len(got.CoffeeShops) != 1 {
		t.Fatalf("expected shop fallback, got %d shops", len(got.CoffeeShops))
	}
	if strings.Contains(got.Intro, RouteStartMarker) || strings.Contains(got.Intro, RouteEndMarker) {
		t.Errorf("marker tokens leaked into intro: %q", got.Intro)
	}
}

func TestParseRouteInvertedTimesRejected(t *testing.T) {
	p := NewParser(nil)

	text := RouteStartMarker + `{
		"title": "Broken",
		"duration": "1 jam",
		"stops": [{"name": "A", "address": "B", "description": "C", "startTime": "14:00", "endTime": "09:00"}]
	}` + RouteEndMarker

	got := p.Parse(text)
	if got.Route != nil {
		t.Fatal("a route with an inverted time window must be rejected")
	}
}

func TestParseStartMarkerWithoutEnd(t *testing.T) {
	p := NewParser(nil)

	text := "Halo " + RouteStartMarker + " dan tidak ada penutup"
	got := p.Parse(text)
	if got.Route != nil {
		t.Fatal("unterminated marker must not produce a route")
	}
	if got.Intro != strings.TrimSpace(text) {
		t.Errorf("Intro = %q", got.Intro)
	}
}

func TestParsePlainProse(t *testing.T) {
	p := NewParser(nil)

	text := "  Halo! Aku barista virtualmu. Mau kopi yang seperti apa?  "
	got := p.Parse(text)
	if got.Route != nil || len(got.CoffeeShops) != 0 {
		t.Fatal("prose must not produce structure")
	}
	if got.Intro != strings.TrimSpace(text) {
		t.Errorf("prose Intro must equal the trimmed input, got %q", got.Intro)
	}
}

func TestParseReasonStripsEmphasis(t *testing.T) {
	p := NewParser(nil)

	text := "**Kineruku**\n*Alamat:* Jl. Hegarmanah No.52\n*Alasan:* Suasananya *sangat* tenang"
	got := p.Parse(text)
	if len(got.CoffeeShops) != 1 {
		t.Fatalf("expected one shop, got %d", len(got.CoffeeShops))
	}
	if got.CoffeeShops[0].Reason != "Suasananya sangat tenang" {
		t.Errorf("Reason = %q", got.CoffeeShops[0].Reason)
	}
}

func TestMeaningfulIntro(t *testing.T) {
	tests := []struct {
		intro string
		want  bool
	}{
		{"", false},
		{"Tentu, ini pilihannya:", true},
		{"--- Catatan: rating dapat berubah.", false},
		{"Ini dia. --- Catatan kaki.", true},
	}

	for _, tt := range tests {
		if got := MeaningfulIntro(tt.intro); got != tt.want {
			t.Errorf("MeaningfulIntro(%q) = %v, want %v", tt.intro, got, tt.want)
		}
	}
}
