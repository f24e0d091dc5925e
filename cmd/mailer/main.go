package main

import (
	"fmt"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/tulipkids/foundation-api/internal/config"
	"github.com/tulipkids/foundation-api/internal/logger"
	"github.com/tulipkids/foundation-api/internal/mailer"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	m := mailer.New(conf.Mailer)

	if err = mailer.Run(m); err != nil {
		return fmt.Errorf("failed to start the mail relay -> %w", err)
	}

	return nil
}
