package endpoint

import (
	"net/http"
	"time"

	"github.com/ariebrainware/voicenotes-api/config"
	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary      Liveness check
// @Description  Health check endpoint, no auth and no domain logic
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service is up"
// @Router       /health [get]
func Health(c *gin.Context) {
	cfg := config.LoadConfig()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": cfg.AppEnv,
	})
}
