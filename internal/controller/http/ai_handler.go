package http

import (
	"errors"
	"net/http"

	"cat-facts/internal/entity"
	"cat-facts/internal/usecase"
	"cat-facts/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aiUseCase usecase.AIUseCase
	logger    *logger.Logger
}

// NewAIHandler accepts a nil use case; the endpoint then reports the AI
// service as unavailable instead of failing at startup.
func NewAIHandler(aiUseCase usecase.AIUseCase, logger *logger.Logger) *AIHandler {
	return &AIHandler{
		aiUseCase: aiUseCase,
		logger:    logger,
	}
}

type AskAIRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskAI godoc
// @Summary      Ask the cat care assistant
// @Description  Relay a question to the AI assistant and stream the answer back as plain text chunks.
// @Tags         ai
// @Accept       json
// @Produce      plain
// @Param        request body AskAIRequest true "The question to ask"
// @Success      200  {string}  string
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/ask-ai [post]
func (h *AIHandler) AskAI(c *gin.Context) {
	if h.aiUseCase == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service is not configured"})
		return
	}

	var req AskAIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	flusher, _ := c.Writer.(http.Flusher)
	streamed := false

	err := h.aiUseCase.Ask(c.Request.Context(), req.Question, func(chunk string) error {
		// Headers go out with the first chunk so validation failures can
		// still answer with a JSON status.
		if !streamed {
			c.Header("Content-Type", "text/plain; charset=utf-8")
			c.Header("Cache-Control", "no-cache")
			streamed = true
		}
		if _, werr := c.Writer.WriteString(chunk); werr != nil {
			return werr
		}
		if flusher != nil {
			flusher.Flush()
		}
		return nil
	})
	if err != nil {
		// Once bytes are on the wire the status line is gone; surface the
		// failure inside the stream instead.
		if streamed {
			h.logger.Error("AI stream aborted: %v", err)
			c.Writer.WriteString("Error: " + err.Error())
			return
		}
		if errors.Is(err, entity.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("AI request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI request failed"})
		return
	}

	c.Status(http.StatusOK)
}
