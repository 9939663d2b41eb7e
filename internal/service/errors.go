package service

import "fmt"

// ValidationError is a missing or malformed request parameter
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missingParam(name string) error {
	return &ValidationError{Message: "Missing required parameter: " + name}
}

// NotFoundError means no record survived the pipeline
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// CompletionError carries the remote status and raw body of a failed completion call
type CompletionError struct {
	Status int
	Body   string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("Completion API error: %s", e.Body)
}
