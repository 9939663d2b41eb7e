package repository

import (
	"context"
	"fmt"
	"quizbank/internal/model"
	"regexp"
)

// TableNamePattern matches the table and exam names every backend accepts
var TableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// QuestionRepo reads question records from a store partitioned into tables
// (Mongo collections or SQL tables), one per question bank or exam.
type QuestionRepo interface {
	// FetchByType returns every record in table whose question-type equals
	// questionType. No match is an empty slice, not an error.
	FetchByType(ctx context.Context, table, questionType string) ([]model.Question, error)

	// FetchAll returns every record in table, following pagination until exhausted
	FetchAll(ctx context.Context, table string) ([]model.Question, error)
}

// StoreUnavailableError wraps any store-level fault
type StoreUnavailableError struct {
	Table string
	Err   error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable (table %s): %v", e.Table, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func storeError(table string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreUnavailableError{Table: table, Err: err}
}

// Page is one slice of a table scan. A nil Next means the scan is finished.
type Page struct {
	Records []model.Question
	Next    interface{}
}

// pageScanner reads one page of a table starting after the given continuation token
type pageScanner interface {
	scanPage(ctx context.Context, table string, after interface{}) (Page, error)
}

// collectPages follows continuation tokens until the scanner reports no
// next page and returns the concatenation in page order.
func collectPages(ctx context.Context, s pageScanner, table string) ([]model.Question, error) {
	var (
		all   = []model.Question{}
		after interface{}
	)
	for {
		page, err := s.scanPage(ctx, table, after)
		if err != nil {
			return nil, storeError(table, err)
		}
		all = append(all, page.Records...)
		if page.Next == nil {
			return all, nil
		}
		after = page.Next
	}
}
