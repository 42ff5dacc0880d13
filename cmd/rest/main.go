package main

import (
	"log"

	"noteful-be/internal/bootstrap"
	"noteful-be/internal/config"
	"noteful-be/internal/server"
	"noteful-be/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.Auth.JwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
