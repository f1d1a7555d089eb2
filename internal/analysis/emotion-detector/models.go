// internal/analysis/emotion-detector/models.go
package emotiondetector

import (
	"encoding/json"

	"emotion-detector/internal/models"
)

// Outcome tells the caller which kind of Result it holds.
type Outcome string

const (
	// OutcomeScored means Scores holds five scores and a dominant emotion.
	OutcomeScored Outcome = "scored"
	// OutcomeInvalidInput means the service rejected the text; Scores is the missing record.
	OutcomeInvalidInput Outcome = "invalid_input"
)

type Result struct {
	Outcome Outcome
	Scores  models.EmotionScores
}

type predictRequest struct {
	RawDocument rawDocument `json:"raw_document"`
}

type rawDocument struct {
	Text string `json:"text"`
}

// predictResponse leaves the predictions raw; only the first one is decoded.
type predictResponse struct {
	EmotionPredictions []json.RawMessage `json:"emotionPredictions"`
}

type emotionPrediction struct {
	Emotion emotionValues `json:"emotion"`
}

// emotionValues keeps the number literals so absent scores can be told apart
// from 0 and integer literals from fractional ones.
type emotionValues struct {
	Anger   *json.Number `json:"anger"`
	Disgust *json.Number `json:"disgust"`
	Fear    *json.Number `json:"fear"`
	Joy     *json.Number `json:"joy"`
	Sadness *json.Number `json:"sadness"`
}
