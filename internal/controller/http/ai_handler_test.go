package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cat-facts/internal/entity"
	"cat-facts/internal/usecase"
	"cat-facts/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAIUseCase is a mock implementation of AIUseCase. The chunks slice is
// emitted before the configured error (if any) is returned, which mimics a
// stream that fails partway through.
type MockAIUseCase struct {
	mock.Mock
	chunks []string
}

func (m *MockAIUseCase) Ask(ctx context.Context, question string, emit func(chunk string) error) error {
	args := m.Called(ctx, question)
	for _, chunk := range m.chunks {
		if err := emit(chunk); err != nil {
			return err
		}
	}
	return args.Error(0)
}

var _ usecase.AIUseCase = (*MockAIUseCase)(nil)

func TestAskAI_StreamsChunks(t *testing.T) {
	mockAI := &MockAIUseCase{chunks: []string{"Meow! ", "Cats ", "love ", "boxes."}}
	logger := logger.New()
	handler := NewAIHandler(mockAI, logger)

	router := setupTestRouter()
	router.POST("/api/ask-ai", handler.AskAI)

	mockAI.On("Ask", mock.Anything, "Why do cats love boxes?").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ask-ai", strings.NewReader(`{"question":"Why do cats love boxes?"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Meow! Cats love boxes.", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	mockAI.AssertExpectations(t)
}

func TestAskAI_MissingQuestion(t *testing.T) {
	mockAI := &MockAIUseCase{}
	logger := logger.New()
	handler := NewAIHandler(mockAI, logger)

	router := setupTestRouter()
	router.POST("/api/ask-ai", handler.AskAI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ask-ai", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAI.AssertNotCalled(t, "Ask")
}

func TestAskAI_InvalidQuestion(t *testing.T) {
	mockAI := &MockAIUseCase{}
	logger := logger.New()
	handler := NewAIHandler(mockAI, logger)

	router := setupTestRouter()
	router.POST("/api/ask-ai", handler.AskAI)

	mockAI.On("Ask", mock.Anything, "   ").Return(fmt.Errorf("%w: question cannot be empty", entity.ErrInvalidInput))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ask-ai", strings.NewReader(`{"question":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAI.AssertExpectations(t)
}

func TestAskAI_MidStreamError(t *testing.T) {
	mockAI := &MockAIUseCase{chunks: []string{"Meow! Cats "}}
	logger := logger.New()
	handler := NewAIHandler(mockAI, logger)

	router := setupTestRouter()
	router.POST("/api/ask-ai", handler.AskAI)

	mockAI.On("Ask", mock.Anything, "Tell me about cats").Return(errors.New("AI request failed: connection reset"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ask-ai", strings.NewReader(`{"question":"Tell me about cats"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	// The status line already went out with the first chunk; the failure
	// is appended to the stream body instead.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Meow! Cats Error: AI request failed: connection reset", w.Body.String())

	mockAI.AssertExpectations(t)
}

func TestAskAI_NotConfigured(t *testing.T) {
	logger := logger.New()
	handler := NewAIHandler(nil, logger)

	router := setupTestRouter()
	router.POST("/api/ask-ai", handler.AskAI)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/ask-ai", strings.NewReader(`{"question":"Why do cats purr?"}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
