package main

import (
	"log"

	"classtrack/app/config"
	"classtrack/app/database"
)

func main() {
	log.Println("Starting migration...")

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Migration completed successfully!")
}
