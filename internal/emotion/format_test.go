package emotion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatResponse(t *testing.T) {
	scores := NewScores(0.01, 0.02, 0.03, 0.9, 0.04)
	require.Equal(t,
		"For the given statement, the system response is 'anger': 0.01, 'disgust': 0.02, 'fear': 0.03, 'joy': 0.9, 'sadness': 0.04. The dominant emotion is joy.",
		FormatResponse(scores))
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.01, "0.01"},
		{0.9, "0.9"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{0.000012345, "1.2345e-05"},
		{0.006120598, "0.006120598"},
		{0, "0.0"},
		{1, "1.0"},
		{12.5, "12.5"},
		{1e16, "1e+16"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, FormatScore(tt.in))
		})
	}
}
