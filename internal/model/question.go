package model

import "strings"

// Letter is a multiple-choice option key
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the four choice keys in display order
var Letters = [4]Letter{LetterA, LetterB, LetterC, LetterD}

// NormalizeLetter trims and upper-cases s and reports whether it names one of A-D
func NormalizeLetter(s string) (Letter, bool) {
	l := Letter(strings.ToUpper(strings.TrimSpace(s)))
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return l, true
	}
	return "", false
}

// Store document keys. These are the table's own column names and double as the wire names.
const (
	FieldQuestionType  = "question-type"
	FieldQuestionText  = "question-text"
	FieldCorrectAnswer = "correct answer"
	FieldQuestionID    = "question-id"
	FieldDomain        = "domain"
	FieldDifficulty    = "difficulty"
)

// OptionField returns the store key for an option, e.g. "option-a"
func OptionField(l Letter) string {
	return "option-" + strings.ToLower(string(l))
}

// ExplanationField returns the store key for an explanation, e.g. "explanation-a"
func ExplanationField(l Letter) string {
	return "explanation-" + strings.ToLower(string(l))
}

// Question is one multiple-choice question record as read from the store.
// Missing string fields are left empty; Options and Explanations only hold
// the letters that were present.
type Question struct {
	QuestionType  string
	Text          string
	Options       map[Letter]string
	Explanations  map[Letter]string
	CorrectAnswer string
	QuestionID    Number
	Domain        string
	Difficulty    string
	SourceExam    string
}

// Correct returns the normalized correct answer letter
func (q *Question) Correct() (Letter, bool) {
	return NormalizeLetter(q.CorrectAnswer)
}

// Valid reports whether the question carries text, a correct answer that
// normalizes to A-D, and all four options and explanations.
func (q *Question) Valid() bool {
	if q.Text == "" {
		return false
	}
	if _, ok := q.Correct(); !ok {
		return false
	}
	for _, l := range Letters {
		if q.Options[l] == "" || q.Explanations[l] == "" {
			return false
		}
	}
	return true
}

// CorrectExplanation returns explanations[correctAnswer], or "" when the
// answer is not a valid letter.
func (q *Question) CorrectExplanation() string {
	l, ok := q.Correct()
	if !ok {
		return ""
	}
	return q.Explanations[l]
}

// QuestionFromDocument builds a Question from a flat store document.
// Non-string values in text fields are ignored; numeric values are read
// through ParseNumber.
func QuestionFromDocument(doc map[string]interface{}) Question {
	q := Question{
		QuestionType:  stringField(doc, FieldQuestionType),
		Text:          stringField(doc, FieldQuestionText),
		CorrectAnswer: stringField(doc, FieldCorrectAnswer),
		Domain:        scalarField(doc, FieldDomain),
		Difficulty:    scalarField(doc, FieldDifficulty),
		Options:       make(map[Letter]string, len(Letters)),
		Explanations:  make(map[Letter]string, len(Letters)),
	}
	for _, l := range Letters {
		if v := stringField(doc, OptionField(l)); v != "" {
			q.Options[l] = v
		}
		if v := stringField(doc, ExplanationField(l)); v != "" {
			q.Explanations[l] = v
		}
	}
	if raw, ok := doc[FieldQuestionID]; ok {
		if n, ok := ParseNumber(raw); ok {
			q.QuestionID = n
		}
	}
	return q
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

// scalarField also accepts numbers, which some tables use for domain codes
func scalarField(doc map[string]interface{}, key string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if n, ok := ParseNumber(v); ok {
		return n.String()
	}
	return ""
}
