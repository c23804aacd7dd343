package database

import (
	"database/sql"
	"encoding/json"

	"classtrack/app/models"
)

// CreateStudent enrolls a student into a class. The grades mapping is
// serialized to its storage representation before the insert. A missing or
// zero class id fails with ErrInvalidClassID and writes nothing.
func CreateStudent(db *sql.DB, student *models.Student, grades map[string]string) error {
	if student.ClassID == 0 {
		return ErrInvalidClassID
	}

	if grades == nil {
		grades = map[string]string{}
	}
	gradesJSON, err := json.Marshal(grades)
	if err != nil {
		return err
	}
	student.Grades = string(gradesJSON)

	query := `INSERT INTO students (first_name, last_name, email, age, class_id, grades)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	return db.QueryRow(query,
		student.FirstName, student.LastName, student.Email, student.Age, student.ClassID, student.Grades,
	).Scan(&student.ID)
}

func GetStudentsByClass(db *sql.DB, classID int) ([]*models.Student, error) {
	query := `SELECT id, first_name, last_name, email, age, class_id, grades
	          FROM students WHERE class_id = $1`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		var grades sql.NullString
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName,
			&student.Email, &student.Age, &student.ClassID, &grades,
		)
		if err != nil {
			return nil, err
		}
		student.Grades = grades.String
		students = append(students, student)
	}
	return students, rows.Err()
}

// GetStudentByID returns a single enrollment row, or ErrNotFound.
func GetStudentByID(db *sql.DB, studentID int) (*models.Student, error) {
	student := &models.Student{}
	var grades sql.NullString
	query := `SELECT id, first_name, last_name, email, age, class_id, grades
	          FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.FirstName, &student.LastName,
		&student.Email, &student.Age, &student.ClassID, &grades,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	student.Grades = grades.String
	return student, nil
}

// GetStudentsByEmail returns every enrollment for the given email with the
// grades mapping deserialized. No match fails with ErrNotFound.
func GetStudentsByEmail(db *sql.DB, email string) ([]*models.StudentWithGrades, error) {
	query := `SELECT id, first_name, last_name, email, age, class_id, grades
	          FROM students WHERE email = $1`

	rows, err := db.Query(query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.StudentWithGrades{}
	for rows.Next() {
		student := &models.Student{}
		var grades sql.NullString
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName,
			&student.Email, &student.Age, &student.ClassID, &grades,
		)
		if err != nil {
			return nil, err
		}
		student.Grades = grades.String
		students = append(students, student.WithGrades())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(students) == 0 {
		return nil, ErrNotFound
	}
	return students, nil
}

// UpdateStudentGrades replaces the stored grades mapping wholesale. Callers
// merge with existing grades client-side before calling.
func UpdateStudentGrades(db *sql.DB, studentID int, grades map[string]string) error {
	if grades == nil {
		grades = map[string]string{}
	}
	gradesJSON, err := json.Marshal(grades)
	if err != nil {
		return err
	}

	query := `UPDATE students SET grades = $1 WHERE id = $2`
	_, err = db.Exec(query, string(gradesJSON), studentID)
	return err
}
