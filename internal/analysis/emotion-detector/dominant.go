// internal/analysis/emotion-detector/dominant.go
package emotiondetector

import (
	"encoding/json"
	"fmt"
	"strings"

	"emotion-detector/internal/models"
)

// DominantEmotion returns the emotion with the greatest score. Ties go to the
// emotion that comes first in models.Emotions. Missing scores never win.
func DominantEmotion(scores models.EmotionScores) models.Emotion {
	var best models.Emotion
	var bestScore float64
	found := false

	for _, e := range models.Emotions {
		s := scores.Get(e)
		if !s.Valid {
			continue
		}
		if !found || s.Value > bestScore {
			best, bestScore, found = e, s.Value, true
		}
	}
	return best
}

// scoreFrom defaults an absent score to 0.0. A literal without a fraction or
// exponent is kept as an integer score.
func scoreFrom(name models.Emotion, n *json.Number) (models.Score, error) {
	if n == nil {
		return models.NewScore(0), nil
	}
	v, err := n.Float64()
	if err != nil {
		return models.Score{}, fmt.Errorf("%s: %w", name, err)
	}
	if !strings.ContainsAny(n.String(), ".eE") {
		return models.NewIntegerScore(v), nil
	}
	return models.NewScore(v), nil
}

func (v emotionValues) toScores() (models.EmotionScores, error) {
	var scores models.EmotionScores
	fields := []struct {
		emotion models.Emotion
		value   *json.Number
		target  *models.Score
	}{
		{models.EmotionAnger, v.Anger, &scores.Anger},
		{models.EmotionDisgust, v.Disgust, &scores.Disgust},
		{models.EmotionFear, v.Fear, &scores.Fear},
		{models.EmotionJoy, v.Joy, &scores.Joy},
		{models.EmotionSadness, v.Sadness, &scores.Sadness},
	}

	for _, f := range fields {
		score, err := scoreFrom(f.emotion, f.value)
		if err != nil {
			return models.EmotionScores{}, err
		}
		*f.target = score
	}

	scores.DominantEmotion = DominantEmotion(scores)
	return scores, nil
}
