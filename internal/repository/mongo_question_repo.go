package repository

import (
	"context"
	"quizbank/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultPageSize is the number of documents fetched per scan page
const DefaultPageSize = 100

type mongoQuestionRepo struct {
	db       *mongo.Database
	pageSize int
}

// NewMongoQuestionRepo creates a question repository where every table is a collection in db
func NewMongoQuestionRepo(db *mongo.Database, pageSize int) QuestionRepo {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &mongoQuestionRepo{
		db:       db,
		pageSize: pageSize,
	}
}

func (r *mongoQuestionRepo) FetchByType(ctx context.Context, table, questionType string) ([]model.Question, error) {
	cursor, err := r.db.Collection(table).Find(ctx, bson.M{model.FieldQuestionType: questionType})
	if err != nil {
		return nil, storeError(table, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError(table, err)
	}
	return questionsFromDocuments(docs), nil
}

func (r *mongoQuestionRepo) FetchAll(ctx context.Context, table string) ([]model.Question, error) {
	return collectPages(ctx, r, table)
}

// scanPage reads documents ordered by _id, using the last _id seen as the continuation token
func (r *mongoQuestionRepo) scanPage(ctx context.Context, table string, after interface{}) (Page, error) {
	filter := bson.M{}
	if after != nil {
		filter = bson.M{"_id": bson.M{"$gt": after}}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(r.pageSize))

	cursor, err := r.db.Collection(table).Find(ctx, filter, opts)
	if err != nil {
		return Page{}, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return Page{}, err
	}

	page := Page{Records: questionsFromDocuments(docs)}
	if len(docs) == r.pageSize {
		page.Next = docs[len(docs)-1]["_id"]
	}
	return page, nil
}

func questionsFromDocuments(docs []bson.M) []model.Question {
	questions := make([]model.Question, 0, len(docs))
	for _, doc := range docs {
		questions = append(questions, model.QuestionFromDocument(doc))
	}
	return questions
}
