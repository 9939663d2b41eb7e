package main

import (
	"context"
	"flag"
	"log"
	"quizbank/internal/app"
	"quizbank/internal/config"
	"quizbank/internal/repository"
	"sort"
	"time"
)

// seed loads question documents from a JSON file into the configured store.
// The file maps table names to arrays of flat question documents.
func main() {
	path := flag.String("file", "data/sample_questions.json", "seed file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	tables, err := repository.ReadSeedFile(*path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var loader repository.QuestionLoader
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := app.OpenSQLite(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to open SQLite: %v", err)
		}
		defer db.Close()
		loader = repository.NewSQLiteQuestionLoader(db)
	default:
		db, err := app.ConnectMongo(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer db.Client().Disconnect(ctx)
		loader = repository.NewMongoQuestionLoader(db)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err := loader.Load(ctx, name, tables[name])
		if err != nil {
			log.Fatalf("Failed to seed %s: %v", name, err)
		}
		log.Printf("Seeded %d questions into %s", n, name)
	}
}
