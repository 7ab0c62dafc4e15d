package barista

import "testing"

func TestParseKalcerQuiz(t *testing.T) {
	text := `[
		{"question":"Menu wajib pas ngopi di Bandung?","options":["Es kopi susu","V60","Kopi tubruk","Matcha"]},
		{"question":"","options":["a","b"]},
		{"question":"Satu opsi saja","options":["a"]}
	]`

	questions, err := ParseKalcerQuiz(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected one valid question, got %d", len(questions))
	}
	if len(questions[0].Options) != 4 {
		t.Errorf("options = %v", questions[0].Options)
	}
}

func TestParseKalcerQuizWrappedObject(t *testing.T) {
	text := `{"questions":[{"question":"Q?","options":["a","b"]}]}`

	questions, err := ParseKalcerQuiz(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected one question, got %d", len(questions))
	}
}

func TestParseKalcerQuizNoUsableQuestions(t *testing.T) {
	if _, err := ParseKalcerQuiz(`[{"question":"","options":[]}]`); err == nil {
		t.Fatal("expected an error when every question is dropped")
	}
	if _, err := ParseKalcerQuiz("bukan json"); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestParseKalcerResultClampsScore(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{`{"score":130,"title":"Sultan Kopi","description":"d"}`, 100},
		{`{"score":-5,"title":"Pemula","description":"d"}`, 0},
		{`{"score":72,"title":"Anak Kopi","description":"d"}`, 72},
	}

	for _, tt := range tests {
		result, err := ParseKalcerResult(tt.text)
		if err != nil {
			t.Fatal(err)
		}
		if result.Score != tt.want {
			t.Errorf("score = %d, want %d", result.Score, tt.want)
		}
	}
}
