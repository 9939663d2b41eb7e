package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"quizbank/internal/config"
	"quizbank/internal/model"
	"quizbank/internal/repository"
	"testing"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StoreBackend:       config.StoreSQLite,
		SQLitePath:         filepath.Join(t.TempDir(), "questions.db"),
		StorePageSize:      2,
		APIKey:             "secret",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
		Endpoints:          config.DefaultEndpoints(),
		AI: &config.AIConfig{
			BaseURL:   "http://127.0.0.1:1",
			Model:     "gpt-3.5-turbo",
			MaxTokens: 150,
			TimeoutMS: 1000,
		},
	}
}

func examDoc(id int) map[string]interface{} {
	return map[string]interface{}{
		"question-text":  "Which layer does a switch operate at?",
		"option-a":       "1",
		"option-b":       "2",
		"option-c":       "3",
		"option-d":       "4",
		"explanation-a":  "physical",
		"explanation-b":  "data link",
		"explanation-c":  "network",
		"explanation-d":  "transport",
		"correct answer": "B",
		"question-id":    id,
		"domain":         "Networking",
		"difficulty":     "Easy",
	}
}

func TestNewServesSQLiteStore(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	db, err := OpenSQLite(ctx, cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	docs := []map[string]interface{}{examDoc(1), examDoc(2), examDoc(3)}
	if _, err := repository.NewSQLiteQuestionLoader(db).Load(ctx, "Sec701", docs); err != nil {
		t.Fatalf("load: %v", err)
	}
	db.Close()

	a, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close(ctx)
	if a.QuotaCache != nil {
		t.Error("quota cache should be disabled without Redis")
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/exam-quiz?exam=Sec701&count=5", nil)
	req.Header.Set("x-api-key", "secret")
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var got []model.QuestionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected all 3 records across pages, got %d", len(got))
	}
	for _, q := range got {
		if q.SourceExam != "Sec701" || q.Explanation != "data link" {
			t.Errorf("unexpected record %+v", q)
		}
	}
}

func TestNewRejectsBadSQLitePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.SQLitePath = filepath.Join(t.TempDir(), "missing", "dir", "q.db")

	if _, err := New(context.Background(), cfg); err == nil {
		t.Error("expected an error for an unopenable database")
	}
}
