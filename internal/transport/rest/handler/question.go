package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"quizbank/internal/config"
	"quizbank/internal/service"
	"strconv"
)

// maxBodyBytes bounds request bodies read by the handlers
const maxBodyBytes = 1 << 20

// QuestionHandler serves one endpoint profile through the retrieval pipeline
type QuestionHandler struct {
	questionSvc *service.QuestionService
	profile     config.EndpointProfile
}

// NewQuestionHandler creates a handler for profile
func NewQuestionHandler(questionSvc *service.QuestionService, profile config.EndpointProfile) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc, profile: profile}
}

// Get handles GET and POST /v1/{profile}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	params, err := requestParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	questions, err := h.questionSvc.Retrieve(r.Context(), &h.profile, params)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// requestParams reads the query string, or the JSON object body when the
// query string is empty. Body scalars are stringified; nested values are ignored.
func requestParams(r *http.Request) (map[string]string, error) {
	params := make(map[string]string)

	query := r.URL.Query()
	if len(query) > 0 {
		for key, values := range query {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
		return params, nil
	}

	if r.Body == nil {
		return params, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return params, nil
	}

	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	for key, v := range raw {
		switch val := v.(type) {
		case string:
			params[key] = val
		case json.Number:
			params[key] = val.String()
		case bool:
			params[key] = strconv.FormatBool(val)
		}
	}
	return params, nil
}
