package model

// QuestionResponse is the wire shape of one question. Field names are a
// fixed contract with existing clients, including the space in "correct answer".
type QuestionResponse struct {
	QuestionText  string `json:"question-text"`
	OptionA       string `json:"option-a"`
	OptionB       string `json:"option-b"`
	OptionC       string `json:"option-c"`
	OptionD       string `json:"option-d"`
	ExplanationA  string `json:"explanation-a"`
	ExplanationB  string `json:"explanation-b"`
	ExplanationC  string `json:"explanation-c"`
	ExplanationD  string `json:"explanation-d"`
	Explanation   string `json:"explanation"`
	CorrectAnswer Letter `json:"correct answer"`
	QuestionType  string `json:"question-type,omitempty"`
	QuestionID    Number `json:"question-id"`
	SourceExam    string `json:"source_exam,omitempty"`
}

// ErrorResponse is the error envelope shared by every endpoint
type ErrorResponse struct {
	Error string      `json:"error"`
	Debug interface{} `json:"debug,omitempty"`
}
