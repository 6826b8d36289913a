package emotion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewScores_Dominant(t *testing.T) {
	tests := []struct {
		description string
		scores      Scores
		want        Emotion
	}{
		{"Should pick joy", NewScores(0.01, 0.02, 0.03, 0.9, 0.04), Joy},
		{"Should pick anger", NewScores(0.7, 0.1, 0.1, 0.05, 0.05), Anger},
		{"Should pick sadness", NewScores(0.1, 0.1, 0.1, 0.1, 0.6), Sadness},
		{"Should pick the first emotion on a tie", NewScores(0.1, 0.5, 0.5, 0.1, 0.1), Disgust},
		{"Should pick anger when every score is zero", NewScores(0, 0, 0, 0, 0), Anger},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.want, tt.scores.Dominant)
			require.True(t, tt.scores.Classified())
		})
	}
}

func TestScores_ZeroValueIsUnclassified(t *testing.T) {
	require.False(t, Scores{}.Classified())
}

func TestScores_Score(t *testing.T) {
	req := require.New(t)
	s := NewScores(0.1, 0.2, 0.3, 0.4, 0.5)
	req.Equal(0.1, s.Score(Anger))
	req.Equal(0.2, s.Score(Disgust))
	req.Equal(0.3, s.Score(Fear))
	req.Equal(0.4, s.Score(Joy))
	req.Equal(0.5, s.Score(Sadness))
	req.Equal(0.0, s.Score("surprise"))
}
