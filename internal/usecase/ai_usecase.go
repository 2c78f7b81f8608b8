package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"cat-facts/internal/entity"
	"cat-facts/pkg/config"
	"cat-facts/pkg/logger"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const catCareSystemPrompt = "You are a helpful, cat-loving assistant for answering cat care questions. " +
	"Greet users with a cheerful 'Meow!' or playful purr to start the conversation. " +
	"Always be friendly, concise, and accurate. " +
	"Feel free to sprinkle in cat puns or playful language to make the experience fun and welcoming."

// AIUseCase relays a question to the completion API and re-emits the answer
// as an incremental text stream.
type AIUseCase interface {
	Ask(ctx context.Context, question string, emit func(chunk string) error) error
}

type aiUseCase struct {
	client      openai.Client
	model       string
	maxTokens   int64
	temperature float64
	maxQuestion int
	logger      *logger.Logger
}

func NewAIUseCase(cfg *config.Config, logger *logger.Logger) AIUseCase {
	return &aiUseCase{
		client:      openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
		model:       cfg.OpenAIModel,
		maxTokens:   int64(cfg.OpenAIMaxTokens),
		temperature: cfg.OpenAITemperature,
		maxQuestion: cfg.MaxFactLength,
		logger:      logger,
	}
}

// Ask validates the question, opens the streaming completion and forwards
// each fragment through emit as it arrives. The stream is forward-only and
// unbuffered: every fragment is handed over before the next is requested.
func (uc *aiUseCase) Ask(ctx context.Context, question string, emit func(chunk string) error) error {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return fmt.Errorf("%w: question cannot be empty", entity.ErrInvalidInput)
	}
	if utf8.RuneCountInString(trimmed) > uc.maxQuestion {
		return fmt.Errorf("%w: question too long, maximum %d characters allowed", entity.ErrInvalidInput, uc.maxQuestion)
	}

	stream := uc.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(uc.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(catCareSystemPrompt),
			openai.UserMessage(trimmed),
		},
		MaxTokens:   openai.Int(uc.maxTokens),
		Temperature: openai.Float(uc.temperature),
	})
	defer stream.Close()

	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		if content := chunk.Choices[0].Delta.Content; content != "" {
			if err := emit(content); err != nil {
				return err
			}
		}
	}

	if err := stream.Err(); err != nil {
		uc.logger.Error("AI stream failed: %v", err)
		return fmt.Errorf("AI request failed: %w", err)
	}

	return nil
}
