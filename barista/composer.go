package barista

import (
	"fmt"
	"strings"

	"github.com/kopibdg/barista-rag/models"
)

// tagDescriptions maps catalog tags to the human wording used in guidance
// sentences. Undocumented tags fall back to the raw tag string.
var tagDescriptions = map[string]string{
	"work-friendly":    "cocok untuk bekerja atau nugas",
	"wifi-kencang":     "punya WiFi kencang",
	"budget-friendly":  "ramah di kantong",
	"late-night":       "buka sampai larut malam",
	"instagramable":    "estetik dan fotogenik",
	"family-friendly":  "nyaman untuk keluarga",
	"spacious":         "tempatnya luas",
	"outdoor":          "punya area outdoor",
	"scenic-view":      "punya pemandangan bagus",
	"quiet":            "suasananya tenang",
	"specialty-coffee": "menyajikan specialty coffee",
	"heritage":         "punya nuansa klasik Bandung",
	"food-menu":        "menu makanannya lengkap",
}

// JoinNatural joins items Indonesian-style: "A", "A dan B", "A, B dan C".
func JoinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " dan " + items[len(items)-1]
	}
}

// ComposePrompt renders the grounding fragment appended to the conversation.
// Output is byte-for-byte deterministic for identical inputs; it feeds both
// the model call and response caching.
func ComposePrompt(analysis Analysis, refs []models.CoffeeShopReference, userMessage string) string {
	var b strings.Builder

	b.WriteString("Gunakan HANYA daftar referensi di bawah ini untuk nama dan alamat kedai kopi. Jangan mengarang nama atau alamat di luar daftar.\n\n")

	if len(analysis.MatchedAreas) > 0 {
		fmt.Fprintf(&b, "Pengguna menyebut area %s. Prioritaskan referensi di area tersebut.\n", JoinNatural(analysis.MatchedAreas))
	}
	if len(analysis.MatchedTags) > 0 {
		described := make([]string, 0, len(analysis.MatchedTags))
		for _, tag := range analysis.MatchedTags {
			if desc, ok := tagDescriptions[tag]; ok {
				described = append(described, desc)
			} else {
				described = append(described, tag)
			}
		}
		fmt.Fprintf(&b, "Pengguna mencari tempat yang %s.\n", JoinNatural(described))
	}
	b.WriteString("Usahakan rekomendasi bervariasi, jangan hanya dari satu area.\n\n")

	b.WriteString("Daftar referensi:\n")
	for i, ref := range refs {
		fmt.Fprintf(&b, "%d. %s — %s | Area: %s | Tag: %s | Rating: %.1f | Suasana: %s | Unggulan: %s | Maps: %s\n",
			i+1,
			ref.Name,
			ref.Address,
			strings.Join(ref.Areas, ", "),
			strings.Join(ref.Tags, ", "),
			ref.Rating,
			ref.Mood,
			ref.Reason,
			ref.MapsQuery,
		)
	}

	b.WriteString("\n" + SectionSeparator + "\n")
	b.WriteString("Pesan pengguna: " + userMessage + "\n")
	b.WriteString("Jawab sesuai format yang diminta pada instruksi sistem.")

	return b.String()
}
