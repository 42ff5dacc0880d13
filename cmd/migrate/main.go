package main

import (
	"log"

	"noteful-be/internal/config"
	"noteful-be/internal/model"
	"noteful-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.User{},
		&model.Folder{},
		&model.Tag{},
		&model.Note{},
		&model.NoteTag{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration complete")
}
