package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"quizbank/internal/cache"
	"quizbank/internal/config"
	"quizbank/internal/repository"
	"quizbank/internal/selection"
	"quizbank/internal/service"
	"quizbank/internal/transport/rest"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App holds the process-wide dependencies shared by every entrypoint
type App struct {
	Config       *config.Config
	QuestionRepo repository.QuestionRepo
	QuotaCache   cache.QuotaCache
	Handler      http.Handler

	closers []func(context.Context) error
}

// New connects the store and optional cache, then wires services and the router
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{Config: cfg}

	repo, err := a.openStore(ctx)
	if err != nil {
		a.Close(ctx)
		return nil, err
	}
	a.QuestionRepo = repo

	if cfg.RedisAddr != "" && cfg.RateLimitPerMinute > 0 {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			// quota is best effort; the limiter lets requests through on cache faults
			log.Printf("Warning: Redis ping failed: %v", err)
		} else {
			log.Println("Connected to Redis")
		}
		a.QuotaCache = cache.NewQuotaCache(rdb)
		a.closers = append(a.closers, func(context.Context) error { return rdb.Close() })
	}

	completion := service.NewCompletionClient(cfg.AI)
	a.Handler = rest.NewRouter(&rest.Container{
		QuestionService:    service.NewQuestionService(repo, selection.NewSampler()),
		ChatService:        service.NewChatService(completion, completion.DefaultOptions()),
		Endpoints:          cfg.Endpoints,
		APIKey:             cfg.APIKey,
		Quota:              a.QuotaCache,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	return a, nil
}

// NewWithRepo wires the router over an existing repository, without Redis
func NewWithRepo(cfg *config.Config, repo repository.QuestionRepo, completer service.Completer) *App {
	opts := service.CompletionOptions{
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	}
	return &App{
		Config:       cfg,
		QuestionRepo: repo,
		Handler: rest.NewRouter(&rest.Container{
			QuestionService:    service.NewQuestionService(repo, selection.NewSampler()),
			ChatService:        service.NewChatService(completer, opts),
			Endpoints:          cfg.Endpoints,
			APIKey:             cfg.APIKey,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		}),
	}
}

func (a *App) openStore(ctx context.Context) (repository.QuestionRepo, error) {
	cfg := a.Config
	switch cfg.StoreBackend {
	case config.StoreSQLite:
		db, err := OpenSQLite(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		log.Println("Opened SQLite store")
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })
		return repository.NewSQLiteQuestionRepo(db, cfg.StorePageSize), nil

	default:
		db, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(ctx context.Context) error { return db.Client().Disconnect(ctx) })
		return repository.NewMongoQuestionRepo(db, cfg.StorePageSize), nil
	}
}

// ConnectMongo connects and pings MongoDB and returns the configured database
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	log.Println("Connected to MongoDB")
	return client.Database(cfg.MongoDatabase), nil
}

// OpenSQLite opens the configured SQLite database
func OpenSQLite(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	return repository.OpenSQLite(ctx, cfg.SQLitePath)
}

// Close releases connections in reverse order of opening
func (a *App) Close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			log.Printf("Warning: close failed: %v", err)
		}
	}
	a.closers = nil
}
