package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema when it does not exist yet. Statements are
// idempotent so the function is safe to run on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS teachers (
			id SERIAL PRIMARY KEY,
			fname VARCHAR(100) NOT NULL,
			lname VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(30),
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS student_logins (
			id SERIAL PRIMARY KEY,
			fname VARCHAR(100) NOT NULL,
			lname VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(30),
			password VARCHAR(255) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id SERIAL PRIMARY KEY,
			cname VARCHAR(255) NOT NULL,
			cid VARCHAR(100),
			description TEXT,
			teacher_email VARCHAR(255)
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id SERIAL PRIMARY KEY,
			class_id INTEGER NOT NULL,
			task_name VARCHAR(255) NOT NULL,
			percentage INTEGER NOT NULL CHECK (percentage >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			age INTEGER,
			class_id INTEGER NOT NULL,
			grades TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id SERIAL PRIMARY KEY,
			class_id INTEGER NOT NULL,
			student_id INTEGER NOT NULL,
			status VARCHAR(10) NOT NULL,
			date DATE NOT NULL,
			UNIQUE (class_id, student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS homework (
			id SERIAL PRIMARY KEY,
			class_id INTEGER NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			submission_date DATE,
			file_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS homework_submissions (
			id SERIAL PRIMARY KEY,
			homework_id INTEGER NOT NULL,
			student_email VARCHAR(255),
			file_path TEXT NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
