package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"quizbank/internal/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionLoader bulk-loads raw question documents into a table.
// Used by the seed tool and tests; the request handlers never write.
type QuestionLoader interface {
	Load(ctx context.Context, table string, docs []map[string]interface{}) (int, error)
}

// ReadSeedFile reads a JSON object mapping table names to arrays of documents
func ReadSeedFile(path string) (map[string][]map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var tables map[string][]map[string]interface{}
	if err := dec.Decode(&tables); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tables, nil
}

type mongoQuestionLoader struct {
	db *mongo.Database
}

// NewMongoQuestionLoader creates a loader inserting into Mongo collections
func NewMongoQuestionLoader(db *mongo.Database) QuestionLoader {
	return &mongoQuestionLoader{db: db}
}

func (l *mongoQuestionLoader) Load(ctx context.Context, table string, docs []map[string]interface{}) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		batch = append(batch, nativeNumbers(doc))
	}
	res, err := l.db.Collection(table).InsertMany(ctx, batch)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// nativeNumbers turns json.Number values into int64 or float64 so Mongo stores them as numbers
func nativeNumbers(doc map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				out[k] = i
				continue
			}
			if f, err := n.Float64(); err == nil {
				out[k] = f
				continue
			}
		}
		out[k] = v
	}
	return out
}

type sqliteQuestionLoader struct {
	db *sql.DB
}

// NewSQLiteQuestionLoader creates a loader inserting into SQLite tables, creating them as needed
func NewSQLiteQuestionLoader(db *sql.DB) QuestionLoader {
	return &sqliteQuestionLoader{db: db}
}

func (l *sqliteQuestionLoader) Load(ctx context.Context, table string, docs []map[string]interface{}) (int, error) {
	if err := EnsureSQLiteTable(ctx, l.db, table); err != nil {
		return 0, err
	}
	name, err := quoteTable(table)
	if err != nil {
		return 0, err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (question_type, document) VALUES (?, ?)`, name))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, doc := range docs {
		raw, err := json.Marshal(doc)
		if err != nil {
			return 0, err
		}
		questionType, _ := doc[model.FieldQuestionType].(string)
		if _, err := stmt.ExecContext(ctx, questionType, string(raw)); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(docs), nil
}
