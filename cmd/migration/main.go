package main

import (
	"flag"
	"log"
	"schoolbell-service/internal/app/config"
	"schoolbell-service/internal/app/drivers/database"
	"schoolbell-service/internal/migration"

	migrate "github.com/rubenv/sql-migrate"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	limit := flag.Int("limit", 0, "maximum number of migrations to apply, 0 means all")
	flag.Parse()

	var migrateDirection migrate.MigrationDirection
	switch *direction {
	case "up":
		migrateDirection = migrate.Up
	case "down":
		migrateDirection = migrate.Down
	default:
		log.Fatalf("Unknown migration direction: %s", *direction)
	}

	driverConfig := config.NewDriverConfig()
	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	migrations := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migration.Files,
		Root:       ".",
	}

	n, err := migrate.ExecMax(db, "postgres", migrations, migrateDirection, *limit)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}
