package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"cat-facts/internal/entity"
	"cat-facts/internal/repo/persistent"
	"cat-facts/pkg/logger"
)

// Result statuses embedded in mutation responses. Create keeps the
// source-compatible 200-with-status contract instead of 409.
const (
	StatusSuccess   = "success"
	StatusDuplicate = "duplicate"
	StatusError     = "error"
	StatusNotFound  = "not_found"
)

// FactResult is the uniform envelope for fact mutations.
type FactResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Status  string       `json:"status"`
	Data    *entity.Fact `json:"data,omitempty"`
}

type FactUseCase interface {
	ListFacts() ([]*entity.Fact, error)
	GetFact(id string) (*entity.Fact, error)
	GetRandomFact() (*entity.Fact, error)
	CreateFact(text string) (*FactResult, error)
	DeleteFact(id string) *FactResult
	LikeFact(factID, userID string) *FactResult
	UnlikeFact(factID, userID string) *FactResult
}

type factUseCase struct {
	factRepo persistent.FactRepository
	minLen   int
	maxLen   int
	logger   *logger.Logger
}

func NewFactUseCase(factRepo persistent.FactRepository, minLen, maxLen int, logger *logger.Logger) FactUseCase {
	return &factUseCase{
		factRepo: factRepo,
		minLen:   minLen,
		maxLen:   maxLen,
		logger:   logger,
	}
}

func (uc *factUseCase) ListFacts() ([]*entity.Fact, error) {
	return uc.factRepo.ListActive()
}

func (uc *factUseCase) GetFact(id string) (*entity.Fact, error) {
	return uc.factRepo.GetByID(id)
}

func (uc *factUseCase) GetRandomFact() (*entity.Fact, error) {
	return uc.factRepo.GetRandomActive()
}

// CreateFact validates the text and delegates to the gateway. Validation
// failures come back as entity.ErrInvalidInput; gateway outcomes are folded
// into the result envelope.
func (uc *factUseCase) CreateFact(text string) (*FactResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: fact cannot be empty", entity.ErrInvalidInput)
	}
	// Bounds are in characters, not bytes.
	length := utf8.RuneCountInString(trimmed)
	if length < uc.minLen {
		return nil, fmt.Errorf("%w: fact too short, minimum %d characters required", entity.ErrInvalidInput, uc.minLen)
	}
	if length > uc.maxLen {
		return nil, fmt.Errorf("%w: fact too long, maximum %d characters allowed", entity.ErrInvalidInput, uc.maxLen)
	}

	fact := &entity.Fact{Text: trimmed}
	if err := uc.factRepo.Insert(fact); err != nil {
		if errors.Is(err, entity.ErrDuplicateFact) {
			uc.logger.Warn("Attempted to insert duplicate fact: %.50s", trimmed)
			return &FactResult{
				Success: false,
				Message: "Fact already exists",
				Status:  StatusDuplicate,
			}, nil
		}
		uc.logger.Error("Failed to insert fact: %v", err)
		return &FactResult{
			Success: false,
			Message: "Failed to add fact",
			Status:  StatusError,
		}, nil
	}

	return &FactResult{
		Success: true,
		Message: "Fact added successfully",
		Status:  StatusSuccess,
		Data:    fact,
	}, nil
}

func (uc *factUseCase) DeleteFact(id string) *FactResult {
	if err := uc.factRepo.SoftDelete(id); err != nil {
		if errors.Is(err, entity.ErrFactNotFound) {
			uc.logger.Warn("Attempted to delete non-existent fact: %s", id)
			return &FactResult{
				Success: false,
				Message: "Fact not found",
				Status:  StatusNotFound,
			}
		}
		uc.logger.Error("Failed to delete fact %s: %v", id, err)
		return &FactResult{
			Success: false,
			Message: "Failed to delete fact",
			Status:  StatusError,
		}
	}

	return &FactResult{
		Success: true,
		Message: "Fact deleted successfully",
		Status:  StatusSuccess,
	}
}

func (uc *factUseCase) LikeFact(factID, userID string) *FactResult {
	if err := uc.factRepo.CreateLike(factID, userID); err != nil {
		uc.logger.Error("Failed to like fact %s: %v", factID, err)
		return &FactResult{
			Success: false,
			Message: "Failed to like fact",
			Status:  StatusError,
		}
	}

	return &FactResult{
		Success: true,
		Message: "Fact liked successfully",
		Status:  StatusSuccess,
	}
}

func (uc *factUseCase) UnlikeFact(factID, userID string) *FactResult {
	if err := uc.factRepo.DeleteLike(factID, userID); err != nil {
		uc.logger.Error("Failed to unlike fact %s: %v", factID, err)
		return &FactResult{
			Success: false,
			Message: "Failed to unlike fact",
			Status:  StatusError,
		}
	}

	return &FactResult{
		Success: true,
		Message: "Fact unliked successfully",
		Status:  StatusSuccess,
	}
}
