package model

import "encoding/json"

// Chat roles
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// QuestionContext describes the question the student is asking about
type QuestionContext struct {
	QuestionText   string `json:"question_text"`
	OptionA        string `json:"option_a"`
	OptionB        string `json:"option_b"`
	OptionC        string `json:"option_c"`
	OptionD        string `json:"option_d"`
	SelectedAnswer string `json:"selected_answer"`
	CorrectAnswer  string `json:"correct_answer"`
}

// ChatMessage is one role-tagged turn sent to the completion API.
// Messages decoded from a request keep their original bytes and are
// re-encoded verbatim, whatever they contain.
type ChatMessage struct {
	Role    string
	Content string
	raw     json.RawMessage
}

// NewChatMessage creates a message from a role and content
func NewChatMessage(role, content string) ChatMessage {
	return ChatMessage{Role: role, Content: content}
}

// UnmarshalJSON keeps the raw bytes; role/content are filled when they decode cleanly
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	m.raw = append(json.RawMessage(nil), data...)
	var fields struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &fields); err == nil {
		m.Role = fields.Role
		m.Content = fields.Content
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (m ChatMessage) MarshalJSON() ([]byte, error) {
	if m.raw != nil {
		return m.raw, nil
	}
	return json.Marshal(struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}{m.Role, m.Content})
}

// ChatRequest is the body of a tutor chat request
type ChatRequest struct {
	QuestionContext QuestionContext `json:"questionContext"`
	ChatHistory     []ChatMessage   `json:"chatHistory"`
	UserMessage     string          `json:"userMessage"`
}

// ChatResponse is returned by the tutor chat endpoint
type ChatResponse struct {
	Response string `json:"response"`
}
