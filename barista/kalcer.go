package barista

import (
	"encoding/json"
	"fmt"

	"github.com/kopibdg/barista-rag/models"
)

// ParseKalcerQuiz parses the quiz-generation response. The model is asked for
// a bare JSON array, but a {"questions": [...]} wrapper is tolerated.
// Questions without text or with fewer than two options are dropped.
func ParseKalcerQuiz(text string) ([]models.KalcerQuestion, error) {
	var questions []models.KalcerQuestion
	if err := json.Unmarshal([]byte(text), &questions); err != nil {
		var wrapped struct {
			Questions []models.KalcerQuestion `json:"questions"`
		}
		if err := json.Unmarshal([]byte(text), &wrapped); err != nil {
			return nil, fmt.Errorf("quiz response is not valid JSON: %w", err)
		}
		questions = wrapped.Questions
	}

	valid := questions[:0]
	for _, q := range questions {
		if q.Question == "" || len(q.Options) < 2 {
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("quiz response contained no usable questions")
	}

	return valid, nil
}

// ParseKalcerResult parses the quiz-evaluation response and clamps the score
// into [0, 100].
func ParseKalcerResult(text string) (models.KalcerResult, error) {
	var result models.KalcerResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return models.KalcerResult{}, fmt.Errorf("evaluation response is not valid JSON: %w", err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if result.Score > 100 {
		result.Score = 100
	}

	return result, nil
}
