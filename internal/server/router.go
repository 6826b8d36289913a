package server

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/emotiflow/internal/logging"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SetupRouter wires the routes once at startup; the returned engine holds no
// per-request state.
func SetupRouter(h *Handler, health *HealthHandler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery(), logging.RequestLogger())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.GET("/", h.Home)
	router.GET("/emotionDetector", h.EmotionDetector)
	router.POST("/emotionDetector", h.EmotionDetector)
	router.GET("/healthz", health.Healthz)

	return router
}
