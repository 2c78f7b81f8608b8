package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cat-facts/internal/entity"
	"cat-facts/pkg/config"
	"cat-facts/pkg/logger"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/stretchr/testify/assert"
)

func newTestAIUseCase() AIUseCase {
	cfg := &config.Config{
		OpenAIAPIKey:      "test-key",
		OpenAIModel:       "gpt-3.5-turbo",
		OpenAIMaxTokens:   256,
		OpenAITemperature: 0.7,
		MaxFactLength:     1000,
	}
	return NewAIUseCase(cfg, logger.New())
}

// newStreamingAIUseCase points the client at a local server replaying the
// given completion fragments as server-sent events.
func newStreamingAIUseCase(t *testing.T, fragments []string) AIUseCase {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, fragment := range fragments {
			fmt.Fprintf(w, "data: {\"id\":\"chatcmpl-1\",\"object\":\"chat.completion.chunk\",\"created\":1,\"model\":\"gpt-3.5-turbo\",\"choices\":[{\"index\":0,\"delta\":{\"content\":%q}}]}\n\n", fragment)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)

	return &aiUseCase{
		client:      openai.NewClient(option.WithAPIKey("test-key"), option.WithBaseURL(server.URL)),
		model:       "gpt-3.5-turbo",
		maxTokens:   256,
		temperature: 0.7,
		maxQuestion: 1000,
		logger:      logger.New(),
	}
}

func TestAsk_EmptyQuestion(t *testing.T) {
	uc := newTestAIUseCase()

	err := uc.Ask(context.Background(), "   ", func(string) error {
		t.Fatal("emit must not be called for invalid input")
		return nil
	})

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestAsk_QuestionTooLong(t *testing.T) {
	uc := newTestAIUseCase()

	err := uc.Ask(context.Background(), strings.Repeat("a", 1001), func(string) error {
		t.Fatal("emit must not be called for invalid input")
		return nil
	})

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestAsk_StreamsFragments(t *testing.T) {
	uc := newStreamingAIUseCase(t, []string{"Meow! ", "Cats love boxes."})

	var got strings.Builder
	err := uc.Ask(context.Background(), "Why do cats love boxes?", func(chunk string) error {
		got.WriteString(chunk)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "Meow! Cats love boxes.", got.String())
}

func TestAsk_MultibyteQuestionCountsCharacters(t *testing.T) {
	uc := newStreamingAIUseCase(t, []string{"Meow!"})

	// 600 characters but 1200 bytes; must pass the 1000-character bound.
	question := strings.Repeat("é", 600)

	var got strings.Builder
	err := uc.Ask(context.Background(), question, func(chunk string) error {
		got.WriteString(chunk)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "Meow!", got.String())
}

func TestAsk_MultibyteQuestionTooLong(t *testing.T) {
	uc := newStreamingAIUseCase(t, []string{"unreachable"})

	err := uc.Ask(context.Background(), strings.Repeat("é", 1001), func(string) error {
		t.Fatal("emit must not be called for invalid input")
		return nil
	})

	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}
