package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"quizbank/internal/model"
	"strings"

	_ "modernc.org/sqlite" // driver: sqlite
)

// Each SQLite table mirrors one Mongo collection: the question-type partition
// key is lifted into a column and the full record is kept as a JSON document.
const sqliteTableSchema = `
CREATE TABLE IF NOT EXISTS %s (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  question_type TEXT,
  document TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS %s ON %s (question_type);`

// ErrInvalidTableName is returned for table names that cannot be safely quoted
var ErrInvalidTableName = errors.New("invalid table name")

type sqliteQuestionRepo struct {
	db       *sql.DB
	pageSize int
}

// OpenSQLite opens a modernc SQLite database
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = "file:quizbank.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// NewSQLiteQuestionRepo creates a question repository over SQLite tables
func NewSQLiteQuestionRepo(db *sql.DB, pageSize int) QuestionRepo {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &sqliteQuestionRepo{
		db:       db,
		pageSize: pageSize,
	}
}

// EnsureSQLiteTable creates a question table and its partition index if missing
func EnsureSQLiteTable(ctx context.Context, db *sql.DB, table string) error {
	name, err := quoteTable(table)
	if err != nil {
		return err
	}
	index := `"` + table + `_question_type"`
	_, err = db.ExecContext(ctx, fmt.Sprintf(sqliteTableSchema, name, index, name))
	return err
}

func (r *sqliteQuestionRepo) FetchByType(ctx context.Context, table, questionType string) ([]model.Question, error) {
	name, err := r.existingTable(ctx, table)
	if err != nil {
		return nil, storeError(table, err)
	}
	if name == "" {
		return []model.Question{}, nil
	}

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, document FROM %s WHERE question_type = ? ORDER BY id`, name),
		questionType)
	if err != nil {
		return nil, storeError(table, err)
	}
	questions, _, _, err := scanDocuments(rows)
	if err != nil {
		return nil, storeError(table, err)
	}
	return questions, nil
}

func (r *sqliteQuestionRepo) FetchAll(ctx context.Context, table string) ([]model.Question, error) {
	name, err := r.existingTable(ctx, table)
	if err != nil {
		return nil, storeError(table, err)
	}
	if name == "" {
		return []model.Question{}, nil
	}
	return collectPages(ctx, r, table)
}

// scanPage reads rows in id order; the last id of a full page is the continuation token
func (r *sqliteQuestionRepo) scanPage(ctx context.Context, table string, after interface{}) (Page, error) {
	name, err := quoteTable(table)
	if err != nil {
		return Page{}, err
	}
	lastID, _ := after.(int64)

	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT id, document FROM %s WHERE id > ? ORDER BY id LIMIT ?`, name),
		lastID, r.pageSize)
	if err != nil {
		return Page{}, err
	}
	questions, maxID, count, err := scanDocuments(rows)
	if err != nil {
		return Page{}, err
	}

	page := Page{Records: questions}
	if count == r.pageSize {
		page.Next = maxID
	}
	return page, nil
}

// existingTable returns the quoted table name, or "" when the table does not exist
func (r *sqliteQuestionRepo) existingTable(ctx context.Context, table string) (string, error) {
	name, err := quoteTable(table)
	if err != nil {
		return "", err
	}
	var found string
	err = r.db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return name, nil
}

// scanDocuments returns the decoded questions, the last row id and the number of rows read
func scanDocuments(rows *sql.Rows) ([]model.Question, int64, int, error) {
	defer rows.Close()

	questions := []model.Question{}
	var (
		lastID int64
		count  int
	)
	for rows.Next() {
		var (
			id  int64
			raw string
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, 0, 0, err
		}
		lastID = id
		count++

		doc, err := decodeDocument(raw)
		if err != nil {
			// an undecodable row is a malformed record, not a store fault
			continue
		}
		questions = append(questions, model.QuestionFromDocument(doc))
	}
	return questions, lastID, count, rows.Err()
}

func decodeDocument(raw string) (map[string]interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func quoteTable(table string) (string, error) {
	if !TableNamePattern.MatchString(table) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}
	return `"` + table + `"`, nil
}
