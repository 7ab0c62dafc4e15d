package barista

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

const artShapeCount = 15

type ArtShape struct {
	Kind     string `json:"kind"` // circle, rect or line
	Size     int    `json:"size"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotation int    `json:"rotation"`
}

// ArtSpec is a deterministic generative layout for a venue card: the same
// name always yields the same colors and shapes, so cards stay stable across
// renders without storing any artwork.
type ArtSpec struct {
	Hue        int        `json:"hue"`
	Background string     `json:"background"`
	Stroke     string     `json:"stroke"`
	Shapes     []ArtShape `json:"shapes"`
}

var artShapeKinds = [3]string{"circle", "rect", "line"}

func GenerateArt(name string) ArtSpec {
	hue := hashAbs(name) % 360

	shapes := make([]ArtShape, 0, artShapeCount)
	for i := 0; i < artShapeCount; i++ {
		suffix := strconv.Itoa(i)
		shapes = append(shapes, ArtShape{
			Kind:     artShapeKinds[hashAbs(name+suffix)%3],
			Size:     hashAbs(name+"s"+suffix)%20 + 10,
			X:        hashAbs(name+"x"+suffix) % 100,
			Y:        hashAbs(name+"y"+suffix) % 100,
			Rotation: hashAbs(name+"r"+suffix) % 360,
		})
	}

	return ArtSpec{
		Hue:        hue,
		Background: fmt.Sprintf("hsl(%d, 60%%, 95%%)", hue),
		Stroke:     fmt.Sprintf("hsl(%d, 40%%, 60%%)", hue),
		Shapes:     shapes,
	}
}

// stringHash folds UTF-16 code units with the classic shift-and-subtract
// string hash; overflow wraps in int32 on purpose so results are stable
// across platforms.
func stringHash(s string) int32 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = int32(unit) + (hash<<5 - hash)
	}
	return hash
}

func hashAbs(s string) int {
	h := int64(stringHash(s))
	if h < 0 {
		h = -h
	}
	return int(h)
}
