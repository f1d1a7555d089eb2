package server

import (
	"fmt"

	"emotion-detector/internal/models"
)

const responseFormat = "For the given statement, the system response is " +
	"'anger': %s, 'disgust': %s, 'fear': %s, 'joy': %s and 'sadness': %s. " +
	"The dominant emotion is %s."

// formatResponse renders the detection sentence. The "no result" record is
// formatted like any other, so every value reads None.
func formatResponse(scores models.EmotionScores) string {
	return fmt.Sprintf(responseFormat,
		scores.Anger,
		scores.Disgust,
		scores.Fear,
		scores.Joy,
		scores.Sadness,
		formatEmotion(scores.DominantEmotion),
	)
}

func formatEmotion(e models.Emotion) string {
	if e == "" {
		return models.MissingText
	}
	return string(e)
}
