package service

import (
	"context"
	"fmt"
	"log"
	"quizbank/internal/config"
	"quizbank/internal/model"
	"quizbank/internal/repository"
	"quizbank/internal/selection"
	"strconv"
	"strings"
)

// Request parameter names
const (
	ParamType         = "type"
	ParamQuestionType = "questionType"
	ParamTypeHyphen   = "question-type"
	ParamExam         = "exam"
	ParamCount        = "count"
	ParamDomain       = "domain"
	ParamDifficulty   = "difficulty"
)

// QuestionService runs the retrieval pipeline for every endpoint profile
type QuestionService struct {
	repo    repository.QuestionRepo
	sampler *selection.Sampler
}

// NewQuestionService creates a new question service
func NewQuestionService(repo repository.QuestionRepo, sampler *selection.Sampler) *QuestionService {
	if sampler == nil {
		sampler = selection.NewSampler()
	}
	return &QuestionService{repo: repo, sampler: sampler}
}

// retrieval is the resolved form of one request
type retrieval struct {
	table        string
	questionType string
	count        int
	domain       string
	difficulty   string
}

// Retrieve fetches, filters, samples and shapes questions for profile.
// Parameter errors are returned before the store is touched.
func (s *QuestionService) Retrieve(ctx context.Context, profile *config.EndpointProfile, params map[string]string) ([]model.QuestionResponse, error) {
	r, err := resolveRetrieval(profile, params)
	if err != nil {
		return nil, err
	}

	var records []model.Question
	var subject string
	if profile.Lookup == config.LookupType {
		subject = fmt.Sprintf("question type: %s", r.questionType)
		records, err = s.repo.FetchByType(ctx, r.table, r.questionType)
	} else {
		subject = fmt.Sprintf("exam: %s", r.table)
		records, err = s.repo.FetchAll(ctx, r.table)
	}
	if err != nil {
		log.Printf("[Store] %s: %v", profile.Name, err)
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Message: "No questions found for " + subject}
	}

	if profile.Filters {
		records = selection.FilterByDomain(records, r.domain)
		records = selection.FilterByDifficulty(records, r.difficulty)
		if len(records) == 0 {
			return nil, &NotFoundError{Message: "No questions found matching the requested domain or difficulty"}
		}
	}

	records = selection.FilterValid(records)
	if len(records) == 0 {
		return nil, &NotFoundError{Message: "No valid questions found for " + subject}
	}

	var picked []model.Question
	if r.count == 1 {
		if q, ok := s.sampler.PickOne(records); ok {
			picked = []model.Question{q}
		}
	} else {
		picked = s.sampler.Sample(records, r.count)
	}

	sourceExam := ""
	if profile.AttachSourceExam {
		sourceExam = r.table
	}
	return ShapeQuestions(picked, sourceExam), nil
}

func resolveRetrieval(profile *config.EndpointProfile, params map[string]string) (*retrieval, error) {
	r := &retrieval{table: profile.Table}

	if profile.ExamScoped {
		exam := strings.TrimSpace(params[ParamExam])
		if exam == "" {
			exam = profile.DefaultExam
		}
		if exam == "" {
			return nil, missingParam(ParamExam)
		}
		if !repository.TableNamePattern.MatchString(exam) || !profile.ExamAllowed(exam) {
			return nil, &ValidationError{Message: "Invalid or missing exam selection"}
		}
		r.table = exam
	}

	if profile.Lookup == config.LookupType {
		r.questionType = firstNonEmpty(params, ParamType, ParamQuestionType, ParamTypeHyphen)
		if r.questionType == "" {
			r.questionType = profile.DefaultType
		}
		if r.questionType == "" {
			return nil, missingParam(ParamTypeHyphen)
		}
	}

	r.count = profile.DefaultCount
	if raw, ok := params[ParamCount]; ok && strings.TrimSpace(raw) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || n <= 0 {
			return nil, &ValidationError{Message: "Invalid count: must be a positive integer"}
		}
		r.count = n
	}
	if profile.MaxCount > 0 && r.count > profile.MaxCount {
		r.count = profile.MaxCount
	}

	if profile.Filters {
		r.domain = params[ParamDomain]
		r.difficulty = params[ParamDifficulty]
	}
	return r, nil
}

func firstNonEmpty(params map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(params[k]); v != "" {
			return v
		}
	}
	return ""
}
