package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cat-facts/internal/entity"
	"cat-facts/internal/repo/persistent"
	"cat-facts/pkg/logger"
)

const catFactsAPIURL = "https://catfact.ninja/fact"

// catFactsAPIDelay keeps the importer polite towards the public API.
const catFactsAPIDelay = 500 * time.Millisecond

type ImportResult struct {
	Success        bool   `json:"success"`
	ImportedCount  int    `json:"imported_count"`
	RequestedCount int    `json:"requested_count"`
	Message        string `json:"message"`
}

type ImportUseCase interface {
	Import(ctx context.Context, numFacts int) (*ImportResult, error)
}

type importUseCase struct {
	factRepo       persistent.FactRepository
	httpClient     *http.Client
	apiURL         string
	delay          time.Duration
	maxImportFacts int
	defaultImport  int
	logger         *logger.Logger
}

func NewImportUseCase(factRepo persistent.FactRepository, maxImportFacts, defaultImport int, logger *logger.Logger) ImportUseCase {
	return &importUseCase{
		factRepo:       factRepo,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
		apiURL:         catFactsAPIURL,
		delay:          catFactsAPIDelay,
		maxImportFacts: maxImportFacts,
		defaultImport:  defaultImport,
		logger:         logger,
	}
}

// Import pulls facts from catfact.ninja one at a time and inserts them
// through the gateway. Duplicates are skipped; up to 3x the requested
// count of fetches are attempted before giving up.
func (uc *importUseCase) Import(ctx context.Context, numFacts int) (*ImportResult, error) {
	if numFacts <= 0 {
		numFacts = uc.defaultImport
	}
	if numFacts > uc.maxImportFacts {
		return nil, fmt.Errorf("%w: at most %d facts can be imported at once", entity.ErrInvalidInput, uc.maxImportFacts)
	}

	imported := 0
	attempts := 0
	maxAttempts := numFacts * 3

	for imported < numFacts && attempts < maxAttempts {
		attempts++

		text, err := uc.fetchFact(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			uc.logger.Warn("Attempt %d: failed to fetch fact: %v", attempts, err)
			continue
		}

		fact := &entity.Fact{Text: text}
		if err := uc.factRepo.Insert(fact); err != nil {
			if errors.Is(err, entity.ErrDuplicateFact) {
				uc.logger.Info("Skipped duplicate fact: %.50s", text)
			} else {
				uc.logger.Error("Failed to insert imported fact: %v", err)
			}
		} else {
			uc.logger.Info("Imported fact: %.50s", text)
			imported++
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(uc.delay):
		}
	}

	return &ImportResult{
		Success:        true,
		ImportedCount:  imported,
		RequestedCount: numFacts,
		Message:        fmt.Sprintf("Imported %d facts out of %d requested", imported, numFacts),
	}, nil
}

func (uc *importUseCase) fetchFact(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.apiURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := uc.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from cat facts API", resp.StatusCode)
	}

	var payload struct {
		Fact string `json:"fact"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if payload.Fact == "" {
		return "", fmt.Errorf("cat facts API returned an empty fact")
	}

	return payload.Fact, nil
}
