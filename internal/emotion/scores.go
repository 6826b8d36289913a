// Package emotion turns text into emotion scores through a pluggable Detector
// and renders those scores as the sentence returned to callers.
package emotion

import (
	"context"
	"errors"
)

type Emotion string

const (
	None    Emotion = ""
	Anger   Emotion = "anger"
	Disgust Emotion = "disgust"
	Fear    Emotion = "fear"
	Joy     Emotion = "joy"
	Sadness Emotion = "sadness"
)

// Emotions lists every tracked emotion in reporting order.
var Emotions = [...]Emotion{Anger, Disgust, Fear, Joy, Sadness}

// ErrUpstream marks failures of the service behind a Detector, as opposed to
// text it could not classify.
var ErrUpstream = errors.New("emotion detector unavailable")

// Scores holds one intensity per tracked emotion. A zero Dominant means the
// text could not be classified and the intensities carry no meaning.
type Scores struct {
	Anger    float64 `json:"anger"`
	Disgust  float64 `json:"disgust"`
	Fear     float64 `json:"fear"`
	Joy      float64 `json:"joy"`
	Sadness  float64 `json:"sadness"`
	Dominant Emotion `json:"dominant_emotion"`
}

// Detector scores a piece of text. Text it cannot classify yields Scores with
// no dominant emotion and a nil error; errors are reserved for the detector
// itself failing.
type Detector interface {
	Detect(ctx context.Context, text string) (Scores, error)
	Name() string
}

// NewScores builds Scores and picks the dominant emotion.
func NewScores(anger, disgust, fear, joy, sadness float64) Scores {
	s := Scores{
		Anger:   anger,
		Disgust: disgust,
		Fear:    fear,
		Joy:     joy,
		Sadness: sadness,
	}
	s.Dominant = s.dominant()
	return s
}

func (s Scores) Classified() bool {
	return s.Dominant != None
}

// Score returns the intensity of e, or 0 for an unknown emotion.
func (s Scores) Score(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	default:
		return 0
	}
}

// ties go to the emotion listed first
func (s Scores) dominant() Emotion {
	best := Emotions[0]
	for _, e := range Emotions[1:] {
		if s.Score(e) > s.Score(best) {
			best = e
		}
	}
	return best
}
