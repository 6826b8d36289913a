// Package server exposes the emotion detector over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/emotiflow/internal/emotion"
	"github.com/spacesedan/emotiflow/internal/logging"
)

// Response is the body of every /emotionDetector answer.
type Response struct {
	Response string `json:"response"`
}

type emotionRequest struct {
	Text *string `json:"text"`
}

type Handler struct {
	detector emotion.Detector
}

func NewHandler(detector emotion.Detector) *Handler {
	return &Handler{detector: detector}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// EmotionDetector scores text from the textToAnalyze query parameter (GET) or
// the text field of a JSON body (POST). Unusable input and text the detector
// cannot classify both get the invalid text message.
func (h *Handler) EmotionDetector(c *gin.Context) {
	text, ok := extractText(c)
	if !ok {
		c.JSON(http.StatusOK, Response{Response: emotion.InvalidTextMessage})
		return
	}

	scores, err := h.detector.Detect(c.Request.Context(), text)
	if errors.Is(err, context.Canceled) {
		slog.Info("[Handler] Client went away before detection finished",
			slog.String("request_id", logging.RequestID(c)),
			slog.String("detector", h.detector.Name()))
		c.JSON(http.StatusServiceUnavailable, Response{Response: emotion.UnavailableMessage})
		return
	}
	if err != nil {
		_ = c.Error(err)
		slog.Error("[Handler] Emotion detection failed",
			slog.String("request_id", logging.RequestID(c)),
			slog.String("detector", h.detector.Name()),
			slog.Bool("upstream", errors.Is(err, emotion.ErrUpstream)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, Response{Response: emotion.UnavailableMessage})
		return
	}

	if !scores.Classified() {
		c.JSON(http.StatusOK, Response{Response: emotion.InvalidTextMessage})
		return
	}

	c.JSON(http.StatusOK, Response{Response: emotion.FormatResponse(scores)})
}

// extractText returns the raw text to analyze and whether it is usable.
func extractText(c *gin.Context) (string, bool) {
	var text string
	if c.Request.Method == http.MethodGet {
		text = c.Query("textToAnalyze")
	} else {
		var body emotionRequest
		if err := c.ShouldBindJSON(&body); err != nil || body.Text == nil {
			return "", false
		}
		text = *body.Text
	}

	if strings.TrimFunc(text, isSpace) == "" {
		return "", false
	}
	return text, true
}

// isSpace extends unicode.IsSpace with the ASCII information separators
// (file, group, record and unit separator), which also count as blank input.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
