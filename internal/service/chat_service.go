package service

import (
	"context"
	"quizbank/internal/model"
)

// ChatService runs the tutor chat pipeline
type ChatService struct {
	completer Completer
	opts      CompletionOptions
}

// NewChatService creates a chat service that sends every request with opts
func NewChatService(completer Completer, opts CompletionOptions) *ChatService {
	return &ChatService{completer: completer, opts: opts}
}

// Reply builds the prompt for req and returns the generated answer
func (s *ChatService) Reply(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	text, err := s.completer.Complete(ctx, BuildMessages(req), s.opts)
	if err != nil {
		return nil, err
	}
	return &model.ChatResponse{Response: text}, nil
}
