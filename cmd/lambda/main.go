package main

import (
	"context"
	"log"
	"quizbank/internal/app"
	"quizbank/internal/config"
	lambdaadapter "quizbank/internal/transport/lambda"

	"github.com/aws/aws-lambda-go/lambda"
)

// The application is built once per container and reused across invocations.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize:", err)
	}

	lambda.Start(lambdaadapter.NewHandler(a.Handler))
}
