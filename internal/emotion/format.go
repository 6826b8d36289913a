package emotion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	InvalidTextMessage = "Invalid text! Please try again!"
	UnavailableMessage = "Emotion detection service is unavailable. Please try again later!"
)

// FormatResponse renders classified scores as the sentence sent back to the caller.
func FormatResponse(s Scores) string {
	return fmt.Sprintf(
		"For the given statement, the system response is "+
			"'anger': %s, 'disgust': %s, "+
			"'fear': %s, 'joy': %s, "+
			"'sadness': %s. "+
			"The dominant emotion is %s.",
		FormatScore(s.Anger), FormatScore(s.Disgust),
		FormatScore(s.Fear), FormatScore(s.Joy),
		FormatScore(s.Sadness),
		s.Dominant,
	)
}

// FormatScore prints the shortest decimal that round-trips v. Integral values
// keep a trailing ".0" and magnitudes below 1e-4 or from 1e16 up switch to
// exponent form.
func FormatScore(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
