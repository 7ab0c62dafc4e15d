// Package catalog ships the embedded reference data of known Bandung venues.
// The seed doubles as the fallback catalog when no database is configured and
// as the source for backfilling one.
package catalog

import (
	"github.com/lib/pq"

	"github.com/kopibdg/barista-rag/models"
)

// Seed returns a fresh copy of the embedded catalog so callers can never
// mutate the canonical data.
func Seed() []models.CoffeeShopReference {
	refs := make([]models.CoffeeShopReference, len(seed))
	copy(refs, seed)
	for i := range refs {
		refs[i].Areas = append(pq.StringArray(nil), seed[i].Areas...)
		refs[i].Tags = append(pq.StringArray(nil), seed[i].Tags...)
	}
	return refs
}

var seed = []models.CoffeeShopReference{
	{
		ID:        1,
		Name:      "Kopi Anjis",
		Address:   "Jl. Bengawan No.34, Cihapit",
		Reason:    "Kopi susu legendaris dengan harga ramah kantong dan porsi mantap",
		Areas:     pq.StringArray{"Cihapit", "Riau"},
		Tags:      pq.StringArray{"budget-friendly", "heritage", "food-menu"},
		Rating:    4.4,
		Mood:      "ramai dan hangat",
		MapsQuery: "Kopi Anjis Jl. Bengawan Bandung",
		Location:  models.NewGeoPoint(107.621, -6.905),
	},
	{
		ID:        2,
		Name:      "Sejiwa Coffee",
		Address:   "Jl. Progo No.15, Citarum",
		Reason:    "Teras luas yang nyaman untuk kerja, espresso bar serius",
		Areas:     pq.StringArray{"Progo", "Riau"},
		Tags:      pq.StringArray{"work-friendly", "wifi-kencang", "specialty-coffee", "spacious"},
		Rating:    4.6,
		Mood:      "tenang dan produktif",
		MapsQuery: "Sejiwa Coffee Progo Bandung",
		Location:  models.NewGeoPoint(107.615, -6.908),
	},
	{
		ID:        3,
		Name:      "Kopi Toko Djawa",
		Address:   "Jl. Braga No.79, Braga",
		Reason:    "Toko kopi klasik di jantung Braga, es kopi susu andalan",
		Areas:     pq.StringArray{"Braga"},
		Tags:      pq.StringArray{"heritage", "instagramable", "budget-friendly"},
		Rating:    4.5,
		Mood:      "nostalgia kota lama",
		MapsQuery: "Kopi Toko Djawa Braga Bandung",
		Location:  models.NewGeoPoint(107.609, -6.917),
	},
	{
		ID:        4,
		Name:      "Two Hands Full",
		Address:   "Jl. Sukajadi No.206, Sukajadi",
		Reason:    "Specialty coffee dan brunch dengan standar barista kompetisi",
		Areas:     pq.StringArray{"Sukajadi"},
		Tags:      pq.StringArray{"specialty-coffee", "food-menu", "instagramable"},
		Rating:    4.6,
		Mood:      "modern dan sibuk",
		MapsQuery: "Two Hands Full Sukajadi Bandung",
		Location:  models.NewGeoPoint(107.595, -6.885),
	},
	{
		ID:        5,
		Name:      "Masagi Koffee",
		Address:   "Jl. Badak Singa No.3, Dago",
		Reason:    "Halaman rindang, cocok nugas lama tanpa merasa diusir",
		Areas:     pq.StringArray{"Dago", "Dipatiukur"},
		Tags:      pq.StringArray{"work-friendly", "wifi-kencang", "outdoor", "quiet"},
		Rating:    4.5,
		Mood:      "asri dan fokus",
		MapsQuery: "Masagi Koffee Badak Singa Bandung",
		Location:  models.NewGeoPoint(107.613, -6.893),
	},
	{
		ID:        6,
		Name:      "Yellow Truck Coffee",
		Address:   "Jl. Linggawastu No.11, Tamansari",
		Reason:    "Buka sampai larut, harga mahasiswa, colokan di mana-mana",
		Areas:     pq.StringArray{"Tamansari", "Dago"},
		Tags:      pq.StringArray{"late-night", "budget-friendly", "work-friendly", "wifi-kencang"},
		Rating:    4.3,
		Mood:      "santai khas tongkrongan",
		MapsQuery: "Yellow Truck Coffee Linggawastu Bandung",
		Location:  models.NewGeoPoint(107.607, -6.899),
	},
	{
		ID:        7,
		Name:      "Armor Kopi",
		Address:   "Jl. Ir. H. Djuanda, Taman Hutan Raya, Dago Pakar",
		Reason:    "Ngopi di tepi hutan pinus dengan udara sejuk pegunungan",
		Areas:     pq.StringArray{"Dago Pakar", "Dago Atas"},
		Tags:      pq.StringArray{"outdoor", "scenic-view", "family-friendly"},
		Rating:    4.4,
		Mood:      "alam terbuka",
		MapsQuery: "Armor Kopi Dago Pakar Bandung",
		Location:  models.NewGeoPoint(107.630, -6.856),
	},
	{
		ID:        8,
		Name:      "Kineruku",
		Address:   "Jl. Hegarmanah No.52, Hegarmanah",
		Reason:    "Perpustakaan, toko buku, dan kedai kopi yang sunyi untuk membaca",
		Areas:     pq.StringArray{"Hegarmanah", "Setiabudhi"},
		Tags:      pq.StringArray{"quiet", "work-friendly", "heritage"},
		Rating:    4.7,
		Mood:      "intim dan sunyi",
		MapsQuery: "Kineruku Hegarmanah Bandung",
		Location:  models.NewGeoPoint(107.600, -6.872),
	},
	{
		ID:        9,
		Name:      "Contrast Coffee",
		Address:   "Jl. Dipati Ukur No.5, Dipatiukur",
		Reason:    "Manual brew single origin dengan rotasi biji mingguan",
		Areas:     pq.StringArray{"Dipatiukur", "Dago"},
		Tags:      pq.StringArray{"specialty-coffee", "quiet", "work-friendly"},
		Rating:    4.5,
		Mood:      "serius soal kopi",
		MapsQuery: "Contrast Coffee Dipati Ukur Bandung",
		Location:  models.NewGeoPoint(107.618, -6.890),
	},
	{
		ID:        10,
		Name:      "Daun Coffee & Space",
		Address:   "Jl. Buah Batu No.183, Buah Batu",
		Reason:    "Area keluarga luas dengan taman bermain kecil dan menu lengkap",
		Areas:     pq.StringArray{"Buah Batu"},
		Tags:      pq.StringArray{"family-friendly", "spacious", "food-menu", "outdoor"},
		Rating:    4.2,
		Mood:      "ramah keluarga",
		MapsQuery: "Daun Coffee Buah Batu Bandung",
		Location:  models.NewGeoPoint(107.625, -6.945),
	},
	{
		ID:        11,
		Name:      "Jardin Cafe",
		Address:   "Jl. Cihampelas No.160, Cihampelas",
		Reason:    "Interior rimbun penuh tanaman, favorit untuk foto",
		Areas:     pq.StringArray{"Cihampelas"},
		Tags:      pq.StringArray{"instagramable", "food-menu", "spacious"},
		Rating:    4.3,
		Mood:      "hijau dan fotogenik",
		MapsQuery: "Jardin Cafe Cihampelas Bandung",
		Location:  models.NewGeoPoint(107.604, -6.894),
	},
	{
		ID:        12,
		Name:      "Nara Park",
		Address:   "Jl. Bukit Pakar Timur No.35, Dago Atas",
		Reason:    "Kompleks kafe di lereng bukit dengan pemandangan kota",
		Areas:     pq.StringArray{"Dago Atas", "Dago Pakar"},
		Tags:      pq.StringArray{"scenic-view", "outdoor", "instagramable", "family-friendly"},
		Rating:    4.4,
		Mood:      "piknik di atas kota",
		MapsQuery: "Nara Park Bukit Pakar Timur Bandung",
		Location:  models.NewGeoPoint(107.633, -6.853),
	},
	{
		ID:        13,
		Name:      "Rasa Bakery and Cafe",
		Address:   "Jl. Tamblong No.15, Braga",
		Reason:    "Berdiri sejak 1930-an, es krim dan kopi tubruk klasik",
		Areas:     pq.StringArray{"Braga", "Tamblong"},
		Tags:      pq.StringArray{"heritage", "family-friendly", "food-menu"},
		Rating:    4.5,
		Mood:      "jadul elegan",
		MapsQuery: "Rasa Bakery Tamblong Bandung",
		Location:  models.NewGeoPoint(107.611, -6.921),
	},
	{
		ID:        14,
		Name:      "Upnormal Coffee Roasters",
		Address:   "Jl. Cihampelas No.82, Cihampelas",
		Reason:    "Roastery 24 jam andalan para deadline fighter",
		Areas:     pq.StringArray{"Cihampelas"},
		Tags:      pq.StringArray{"late-night", "work-friendly", "wifi-kencang", "budget-friendly"},
		Rating:    4.1,
		Mood:      "begadang bareng",
		MapsQuery: "Upnormal Coffee Roasters Cihampelas Bandung",
		Location:  models.NewGeoPoint(107.603, -6.896),
	},
}
