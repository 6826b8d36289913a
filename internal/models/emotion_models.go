package models

type (
	WatsonEmotionRequest struct {
		RawDocument WatsonRawDocument `json:"raw_document"`
	}
	WatsonRawDocument struct {
		Text string `json:"text"`
	}
)

type (
	WatsonEmotionResponse struct {
		EmotionPredictions []WatsonEmotionPrediction `json:"emotionPredictions"`
		ProducerID         *WatsonProducerID         `json:"producerId,omitempty"`
	}
	WatsonEmotionPrediction struct {
		Emotion WatsonEmotion `json:"emotion"`
	}
	WatsonEmotion struct {
		Anger   float64 `json:"anger"`
		Disgust float64 `json:"disgust"`
		Fear    float64 `json:"fear"`
		Joy     float64 `json:"joy"`
		Sadness float64 `json:"sadness"`
	}
	WatsonProducerID struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
)

// OpenAIEmotionResponse is the JSON object the chat model is asked to answer with.
// Pointers distinguish a missing key from a zero score.
type OpenAIEmotionResponse struct {
	Anger   *float64 `json:"anger"`
	Disgust *float64 `json:"disgust"`
	Fear    *float64 `json:"fear"`
	Joy     *float64 `json:"joy"`
	Sadness *float64 `json:"sadness"`
}
