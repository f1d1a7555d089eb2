// internal/analysis/emotion-detector/schema.go
package emotiondetector

import "emotion-detector/internal/common/validation"

func numberProperty() map[string]interface{} {
	return map[string]interface{}{"type": "number"}
}

// predictionSchema describes the part of the EmotionPredict response we read:
// the first prediction only. Individual scores may be absent but must be
// numbers when present. Later predictions are not checked.
var predictionSchema = validation.MustCompile(map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"emotionPredictions"},
	"properties": map[string]interface{}{
		"emotionPredictions": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": []interface{}{map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"emotion"},
				"properties": map[string]interface{}{
					"emotion": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"anger":   numberProperty(),
							"disgust": numberProperty(),
							"fear":    numberProperty(),
							"joy":     numberProperty(),
							"sadness": numberProperty(),
						},
					},
				},
			}},
		},
	},
})
