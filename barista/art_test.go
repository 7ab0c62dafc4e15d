package barista

import (
	"reflect"
	"testing"
)

func TestGenerateArtDeterministic(t *testing.T) {
	first := GenerateArt("Kopi Anjis")
	second := GenerateArt("Kopi Anjis")
	if !reflect.DeepEqual(first, second) {
		t.Fatal("the same name must always produce the same art")
	}
}

func TestGenerateArtShape(t *testing.T) {
	art := GenerateArt("Sejiwa Coffee")

	if art.Hue < 0 || art.Hue >= 360 {
		t.Errorf("hue = %d, want [0, 360)", art.Hue)
	}
	if len(art.Shapes) != artShapeCount {
		t.Fatalf("got %d shapes, want %d", len(art.Shapes), artShapeCount)
	}
	for i, shape := range art.Shapes {
		switch shape.Kind {
		case "circle", "rect", "line":
		default:
			t.Errorf("shape %d has unknown kind %q", i, shape.Kind)
		}
		if shape.Size < 10 || shape.Size >= 30 {
			t.Errorf("shape %d size = %d, want [10, 30)", i, shape.Size)
		}
		if shape.X < 0 || shape.X >= 100 || shape.Y < 0 || shape.Y >= 100 {
			t.Errorf("shape %d position = (%d, %d), want [0, 100)", i, shape.X, shape.Y)
		}
		if shape.Rotation < 0 || shape.Rotation >= 360 {
			t.Errorf("shape %d rotation = %d, want [0, 360)", i, shape.Rotation)
		}
	}
}

func TestGenerateArtDistinctNames(t *testing.T) {
	if reflect.DeepEqual(GenerateArt("Kineruku"), GenerateArt("Armor Kopi")) {
		t.Error("different names should produce different art")
	}
}

func TestStringHashKnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
	}

	for _, tt := range tests {
		if got := stringHash(tt.in); got != tt.want {
			t.Errorf("stringHash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
