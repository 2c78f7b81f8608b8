package http

import (
	"net/http"

	"cat-facts/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	aiEnabled bool
	logger    *logger.Logger
}

func NewHealthHandler(db *gorm.DB, aiEnabled bool, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		aiEnabled: aiEnabled,
		logger:    logger,
	}
}

// Root godoc
// @Summary      API greeting
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Cat Facts API is running"})
}

// Health godoc
// @Summary      Health check
// @Description  Reports service, database and AI availability.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	sqlDB, err := h.db.DB()
	if err != nil {
		dbStatus = "error"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		h.logger.Warn("Database ping failed: %v", err)
		dbStatus = "disconnected"
	}

	aiStatus := "configured"
	if !h.aiEnabled {
		aiStatus = "not_configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"database":   dbStatus,
		"backend":    "postgres",
		"ai_service": aiStatus,
	})
}
