package database

import (
	"database/sql"
	"fmt"
	"strings"

	"classtrack/app/models"
)

// CreateClassWithTasks inserts a class and its tasks in one transaction, so a
// failed task insert never leaves an orphaned class behind. An empty task
// list creates the class alone.
func CreateClassWithTasks(db *sql.DB, class *models.Class, tasks []*models.Task) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO classes (cname, cid, description, teacher_email)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err = tx.QueryRow(query, class.Name, class.Code, class.Description, class.TeacherEmail).
		Scan(&class.ID)
	if err != nil {
		return err
	}

	if len(tasks) > 0 {
		valueStrings := make([]string, 0, len(tasks))
		valueArgs := make([]interface{}, 0, len(tasks)*3)

		for i, task := range tasks {
			valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3))
			valueArgs = append(valueArgs, class.ID, task.TaskName, task.Percentage)
			task.ClassID = class.ID
		}

		insertTasks := fmt.Sprintf("INSERT INTO tasks (class_id, task_name, percentage) VALUES %s",
			strings.Join(valueStrings, ","))

		if _, err := tx.Exec(insertTasks, valueArgs...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func GetAllClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, cname, cid, description, teacher_email FROM classes`
	return queryClasses(db, query)
}

// GetClassesByTeacher returns the classes whose teacher_email equals email.
func GetClassesByTeacher(db *sql.DB, email string) ([]*models.Class, error) {
	query := `SELECT id, cname, cid, description, teacher_email FROM classes WHERE teacher_email = $1`
	return queryClasses(db, query, email)
}

func queryClasses(db *sql.DB, query string, args ...interface{}) ([]*models.Class, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.Class{}
	for rows.Next() {
		class := &models.Class{}
		err := rows.Scan(&class.ID, &class.Name, &class.Code, &class.Description, &class.TeacherEmail)
		if err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// GetClassName returns the name of the class with the given id, or
// ErrNotFound when no such class exists.
func GetClassName(db *sql.DB, classID int) (string, error) {
	var cname string
	query := `SELECT cname FROM classes WHERE id = $1`

	err := db.QueryRow(query, classID).Scan(&cname)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return cname, nil
}

func GetTasksByClass(db *sql.DB, classID int) ([]*models.Task, error) {
	query := `SELECT id, class_id, task_name, percentage FROM tasks WHERE class_id = $1`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.ClassID, &task.TaskName, &task.Percentage); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
