package selection

import (
	"quizbank/internal/model"
	"strings"
)

// FilterValid keeps only records that pass model.Question.Valid, in their
// original order. Malformed records are dropped, never reported.
func FilterValid(records []model.Question) []model.Question {
	valid := make([]model.Question, 0, len(records))
	for _, q := range records {
		if q.Valid() {
			valid = append(valid, q)
		}
	}
	return valid
}

// FilterByDomain keeps records whose trimmed domain equals the trimmed argument.
// An empty domain disables the filter.
func FilterByDomain(records []model.Question, domain string) []model.Question {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return records
	}
	return filter(records, func(q *model.Question) bool {
		return strings.TrimSpace(q.Domain) == domain
	})
}

// FilterByDifficulty keeps records whose difficulty matches case-insensitively.
// An empty difficulty disables the filter.
func FilterByDifficulty(records []model.Question, difficulty string) []model.Question {
	if difficulty == "" {
		return records
	}
	return filter(records, func(q *model.Question) bool {
		return strings.EqualFold(q.Difficulty, difficulty)
	})
}

func filter(records []model.Question, keep func(*model.Question) bool) []model.Question {
	out := make([]model.Question, 0, len(records))
	for i := range records {
		if keep(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
