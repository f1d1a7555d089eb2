// internal/models/emotion.go
package models

import (
	"math"
	"strconv"
	"strings"
)

type Emotion string

const (
	EmotionAnger   Emotion = "anger"
	EmotionDisgust Emotion = "disgust"
	EmotionFear    Emotion = "fear"
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
)

// Emotions lists the tracked emotions in declaration order. Ties for the
// dominant emotion resolve to the earliest entry.
var Emotions = []Emotion{
	EmotionAnger,
	EmotionDisgust,
	EmotionFear,
	EmotionJoy,
	EmotionSadness,
}

// MissingText is how a missing score or dominant emotion is printed.
const MissingText = "None"

// Score is a nullable emotion score. An invalid Score marks a missing value,
// which is not the same thing as 0.0. Integer is set when the service sent the
// value as an integer literal.
type Score struct {
	Value   float64
	Valid   bool
	Integer bool
}

func NewScore(v float64) Score {
	return Score{Value: v, Valid: true}
}

func NewIntegerScore(v float64) Score {
	return Score{Value: v, Valid: true, Integer: true}
}

// String prints the shortest round-tripping decimal. Fractional scores keep a
// trailing ".0" when whole and switch to exponent form below 1e-4 (1e-05);
// integer scores print without a fraction. A missing score prints as None.
func (s Score) String() string {
	if !s.Valid {
		return MissingText
	}
	if s.Integer {
		return strconv.FormatFloat(s.Value, 'f', -1, 64)
	}

	abs := math.Abs(s.Value)
	if abs != 0 && abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(s.Value, 'g', -1, 64)
	}

	out := strconv.FormatFloat(s.Value, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

// EmotionScores is the normalized classifier output for one piece of text.
type EmotionScores struct {
	Anger           Score
	Disgust         Score
	Fear            Score
	Joy             Score
	Sadness         Score
	DominantEmotion Emotion
}

// MissingEmotionScores returns the "no result" record: every score missing and no dominant emotion.
func MissingEmotionScores() EmotionScores {
	return EmotionScores{}
}

// IsMissing reports whether s is the "no result" record.
func (s EmotionScores) IsMissing() bool {
	for _, e := range Emotions {
		if s.Get(e).Valid {
			return false
		}
	}
	return s.DominantEmotion == ""
}

func (s EmotionScores) Get(e Emotion) Score {
	switch e {
	case EmotionAnger:
		return s.Anger
	case EmotionDisgust:
		return s.Disgust
	case EmotionFear:
		return s.Fear
	case EmotionJoy:
		return s.Joy
	case EmotionSadness:
		return s.Sadness
	}
	return Score{}
}
