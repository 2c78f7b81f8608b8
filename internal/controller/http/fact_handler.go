package http

import (
	"errors"
	"net/http"

	"cat-facts/internal/entity"
	"cat-facts/internal/usecase"
	"cat-facts/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FactHandler struct {
	factUseCase   usecase.FactUseCase
	importUseCase usecase.ImportUseCase
	logger        *logger.Logger
}

func NewFactHandler(factUseCase usecase.FactUseCase, importUseCase usecase.ImportUseCase, logger *logger.Logger) *FactHandler {
	return &FactHandler{
		factUseCase:   factUseCase,
		importUseCase: importUseCase,
		logger:        logger,
	}
}

func (h *FactHandler) formatFactResponse(fact *entity.Fact) gin.H {
	return gin.H{
		"id":          fact.ID,
		"fact":        fact.Text,
		"created_at":  fact.CreatedAt,
		"likes_count": fact.LikesCount,
	}
}

// ListFacts godoc
// @Summary      List all cat facts
// @Description  Get all active cat facts, most recent first
// @Tags         catfacts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /catfacts [get]
func (h *FactHandler) ListFacts(c *gin.Context) {
	facts, err := h.factUseCase.ListFacts()
	if err != nil {
		h.logger.Error("Failed to list facts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch facts"})
		return
	}

	formatted := make([]gin.H, len(facts))
	for i, fact := range facts {
		formatted[i] = h.formatFactResponse(fact)
	}

	c.JSON(http.StatusOK, gin.H{"facts": formatted, "total_count": len(formatted)})
}

// GetRandomFact godoc
// @Summary      Get a random cat fact
// @Description  Get one active cat fact chosen at random
// @Tags         catfacts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /catfacts/random [get]
func (h *FactHandler) GetRandomFact(c *gin.Context) {
	fact, err := h.factUseCase.GetRandomFact()
	if err != nil {
		if errors.Is(err, entity.ErrFactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No facts found in database"})
			return
		}
		h.logger.Error("Failed to get random fact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch random fact"})
		return
	}

	c.JSON(http.StatusOK, h.formatFactResponse(fact))
}

// GetFact godoc
// @Summary      Get a cat fact by ID
// @Tags         catfacts
// @Produce      json
// @Param        id path string true "Fact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /catfacts/{id} [get]
func (h *FactHandler) GetFact(c *gin.Context) {
	factID := c.Param("id")

	fact, err := h.factUseCase.GetFact(factID)
	if err != nil {
		if errors.Is(err, entity.ErrFactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
			return
		}
		h.logger.Error("Failed to get fact %s: %v", factID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fact"})
		return
	}

	c.JSON(http.StatusOK, h.formatFactResponse(fact))
}

// CreateFact godoc
// @Summary      Add a new cat fact
// @Description  Add a new cat fact. Duplicate facts are reported with status "duplicate" in a 200 response.
// @Tags         catfacts
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        fact formData string true "The cat fact text"
// @Success      200  {object}  usecase.FactResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /catfacts [post]
func (h *FactHandler) CreateFact(c *gin.Context) {
	text := c.PostForm("fact")

	result, err := h.factUseCase.CreateFact(text)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to create fact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LikeFact godoc
// @Summary      Like a cat fact
// @Description  Record a like for a fact. Anonymous likes get a one-off identity and cannot be undone later.
// @Tags         catfacts
// @Produce      json
// @Param        id path string true "Fact ID"
// @Success      200  {object}  usecase.FactResult
// @Router       /catfacts/{id}/like [post]
func (h *FactHandler) LikeFact(c *gin.Context) {
	factID := c.Param("id")
	userID := c.GetString("user_id")

	result := h.factUseCase.LikeFact(factID, userID)
	c.JSON(http.StatusOK, result)
}

// UnlikeFact godoc
// @Summary      Remove a like from a cat fact
// @Tags         catfacts
// @Produce      json
// @Param        id path string true "Fact ID"
// @Success      200  {object}  usecase.FactResult
// @Router       /catfacts/{id}/like [delete]
func (h *FactHandler) UnlikeFact(c *gin.Context) {
	factID := c.Param("id")
	userID := c.GetString("user_id")

	result := h.factUseCase.UnlikeFact(factID, userID)
	c.JSON(http.StatusOK, result)
}

// DeleteFact godoc
// @Summary      Delete a cat fact
// @Description  Soft delete a fact: it stays in the store but disappears from all reads.
// @Tags         catfacts
// @Produce      json
// @Param        id path string true "Fact ID"
// @Success      200  {object}  usecase.FactResult
// @Router       /catfacts/{id} [delete]
func (h *FactHandler) DeleteFact(c *gin.Context) {
	factID := c.Param("id")

	result := h.factUseCase.DeleteFact(factID)
	c.JSON(http.StatusOK, result)
}

type ImportFactsRequest struct {
	NumFacts int `json:"num_facts"`
}

// ImportFacts godoc
// @Summary      Import facts from catfact.ninja
// @Tags         catfacts
// @Accept       json
// @Produce      json
// @Param        request body ImportFactsRequest false "Number of facts to import"
// @Success      200  {object}  usecase.ImportResult
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /import-facts [post]
func (h *FactHandler) ImportFacts(c *gin.Context) {
	var req ImportFactsRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.importUseCase.Import(c.Request.Context(), req.NumFacts)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to import facts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import facts"})
		return
	}

	c.JSON(http.StatusOK, result)
}
