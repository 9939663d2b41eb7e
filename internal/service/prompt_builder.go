package service

import (
	"fmt"
	"quizbank/internal/model"
)

// BuildMessages returns the system prompt, the caller's history untouched,
// then the new user turn.
func BuildMessages(req model.ChatRequest) []model.ChatMessage {
	messages := make([]model.ChatMessage, 0, len(req.ChatHistory)+2)
	messages = append(messages, model.NewChatMessage(model.RoleSystem, buildSystemPrompt(req.QuestionContext)))
	messages = append(messages, req.ChatHistory...)
	messages = append(messages, model.NewChatMessage(model.RoleUser, req.UserMessage))
	return messages
}

func buildSystemPrompt(qc model.QuestionContext) string {
	return fmt.Sprintf(`You are a helpful AI tutor. Use the following question context to help the user understand the topic better: Question: %s
Options:
A) %s
B) %s
C) %s
D) %s
User selected: %s
Correct answer: %s`,
		qc.QuestionText, qc.OptionA, qc.OptionB, qc.OptionC, qc.OptionD,
		qc.SelectedAnswer, qc.CorrectAnswer)
}
