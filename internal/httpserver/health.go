package httpserver

import (
	"time"

	"github.com/gin-gonic/gin"

	"edubot/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "EduBot API"
	HealthVersion = "1.0.0"
	ServiceName   = "edubot"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"time":    response.DateTime(time.Now()),
	})
}

// readyCheck reports whether the intents and model/artifact loaded.
// @Summary Readiness Check
// @Description Ready once the intent store and model or embedding artifact loaded; 503 with the load error otherwise
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Load error"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.chatUC.Ready(); err != nil {
		response.ServiceUnavailable(c, err.Error())
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
