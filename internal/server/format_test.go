package server

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"emotion-detector/internal/models"
)

func TestFormatResponse(t *testing.T) {
	t.Run("scored", func(t *testing.T) {
		scores := models.EmotionScores{
			Anger:           models.NewScore(0.006274985),
			Disgust:         models.NewScore(0.0025598293),
			Fear:            models.NewScore(0.009251528),
			Joy:             models.NewScore(0.9680386),
			Sadness:         models.NewScore(0.049744144),
			DominantEmotion: models.EmotionJoy,
		}

		assert.Equal(t,
			"For the given statement, the system response is 'anger': 0.006274985, 'disgust': 0.0025598293, "+
				"'fear': 0.009251528, 'joy': 0.9680386 and 'sadness': 0.049744144. The dominant emotion is joy.",
			formatResponse(scores))
	})

	t.Run("no result record", func(t *testing.T) {
		assert.Equal(t,
			"For the given statement, the system response is 'anger': None, 'disgust': None, "+
				"'fear': None, 'joy': None and 'sadness': None. The dominant emotion is None.",
			formatResponse(models.MissingEmotionScores()))
	})

	t.Run("integer scores keep integer text", func(t *testing.T) {
		scores := models.EmotionScores{
			Anger:           models.NewIntegerScore(0),
			Disgust:         models.NewScore(0),
			Fear:            models.NewScore(0),
			Joy:             models.NewIntegerScore(1),
			Sadness:         models.NewScore(0.5),
			DominantEmotion: models.EmotionJoy,
		}

		assert.Equal(t,
			"For the given statement, the system response is 'anger': 0, 'disgust': 0.0, "+
				"'fear': 0.0, 'joy': 1 and 'sadness': 0.5. The dominant emotion is joy.",
			formatResponse(scores))
	})
}
