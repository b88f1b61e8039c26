package main

import (
	"context"
	"log"
	"os"

	"roastery-admin/internal/config"
	"roastery-admin/internal/db"
	adminrepo "roastery-admin/internal/repository/admin"
	productrepo "roastery-admin/internal/repository/product"
	"roastery-admin/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	products := productrepo.NewPostgres(pool, logger)
	admins := adminrepo.NewPostgres(pool, logger)

	if err := seed.Apply(ctx, products, admins); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
