package service

import "quizbank/internal/model"

// ShapeQuestions converts valid records into the wire schema, deriving
// explanation from the correct answer. sourceExam is attached when non-empty.
func ShapeQuestions(records []model.Question, sourceExam string) []model.QuestionResponse {
	out := make([]model.QuestionResponse, 0, len(records))
	for i := range records {
		out = append(out, ShapeQuestion(&records[i], sourceExam))
	}
	return out
}

// ShapeQuestion shapes a single record
func ShapeQuestion(q *model.Question, sourceExam string) model.QuestionResponse {
	correct, _ := q.Correct()
	resp := model.QuestionResponse{
		QuestionText:  q.Text,
		OptionA:       q.Options[model.LetterA],
		OptionB:       q.Options[model.LetterB],
		OptionC:       q.Options[model.LetterC],
		OptionD:       q.Options[model.LetterD],
		ExplanationA:  q.Explanations[model.LetterA],
		ExplanationB:  q.Explanations[model.LetterB],
		ExplanationC:  q.Explanations[model.LetterC],
		ExplanationD:  q.Explanations[model.LetterD],
		Explanation:   q.CorrectExplanation(),
		CorrectAnswer: correct,
		QuestionType:  q.QuestionType,
		QuestionID:    q.QuestionID,
		SourceExam:    q.SourceExam,
	}
	if sourceExam != "" {
		resp.SourceExam = sourceExam
	}
	return resp
}
