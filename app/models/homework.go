package models

import "time"

// Homework is an assignment posted by a teacher for a class. FilePath points
// at the stored upload; the file content itself lives on disk.
type Homework struct {
	ID             int       `json:"id"`
	ClassID        int       `json:"class_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	SubmissionDate time.Time `json:"submission_date"`
	FilePath       string    `json:"file_path"`
}

// HomeworkSubmission records a student's uploaded answer to a homework.
// StudentEmail is taken from the session when one is present.
type HomeworkSubmission struct {
	ID           int       `json:"id"`
	HomeworkID   int       `json:"homework_id"`
	StudentEmail *string   `json:"student_email,omitempty"`
	FilePath     string    `json:"file_path"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
