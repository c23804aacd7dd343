package database

import (
	"database/sql"

	"classtrack/app/models"
)

func CreateHomework(db *sql.DB, hw *models.Homework) error {
	query := `INSERT INTO homework (class_id, title, description, submission_date, file_path)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	return db.QueryRow(query, hw.ClassID, hw.Title, hw.Description, hw.SubmissionDate, hw.FilePath).
		Scan(&hw.ID)
}

func GetHomeworkByClass(db *sql.DB, classID int) ([]*models.Homework, error) {
	query := `SELECT id, class_id, title, description, submission_date, file_path
	          FROM homework WHERE class_id = $1`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	homeworks := []*models.Homework{}
	for rows.Next() {
		hw := &models.Homework{}
		var filePath sql.NullString
		err := rows.Scan(&hw.ID, &hw.ClassID, &hw.Title, &hw.Description, &hw.SubmissionDate, &filePath)
		if err != nil {
			return nil, err
		}
		hw.FilePath = filePath.String
		homeworks = append(homeworks, hw)
	}
	return homeworks, rows.Err()
}

func CreateHomeworkSubmission(db *sql.DB, sub *models.HomeworkSubmission) error {
	query := `INSERT INTO homework_submissions (homework_id, student_email, file_path)
	          VALUES ($1, $2, $3)
	          RETURNING id, submitted_at`

	return db.QueryRow(query, sub.HomeworkID, sub.StudentEmail, sub.FilePath).
		Scan(&sub.ID, &sub.SubmittedAt)
}

func GetSubmissionsByHomework(db *sql.DB, homeworkID int) ([]*models.HomeworkSubmission, error) {
	query := `SELECT id, homework_id, student_email, file_path, submitted_at
	          FROM homework_submissions WHERE homework_id = $1`

	rows, err := db.Query(query, homeworkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*models.HomeworkSubmission{}
	for rows.Next() {
		sub := &models.HomeworkSubmission{}
		err := rows.Scan(&sub.ID, &sub.HomeworkID, &sub.StudentEmail, &sub.FilePath, &sub.SubmittedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}
