package database

import (
	"database/sql"

	"classtrack/app/models"
)

// EmailRegistered reports whether an email exists in either account table.
// Uniqueness is enforced across the union of teachers and student logins at
// registration time, not by a cross-table constraint.
func EmailRegistered(db *sql.DB, email string) (bool, error) {
	query := `SELECT (SELECT COUNT(*) FROM teachers WHERE email = $1)
	               + (SELECT COUNT(*) FROM student_logins WHERE email = $1)`

	var count int
	if err := db.QueryRow(query, email).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateAccount inserts a new login record into the table selected by the
// account's role: "Student" goes to student_logins, anything else to
// teachers. The password must already be hashed.
func CreateAccount(db *sql.DB, acct *models.Account) error {
	table := "teachers"
	if acct.Role == models.RoleStudent {
		table = "student_logins"
	}

	query := `INSERT INTO ` + table + ` (fname, lname, email, phone, password)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	return db.QueryRow(query, acct.FirstName, acct.LastName, acct.Email, acct.Phone, acct.Password).
		Scan(&acct.ID)
}

// GetTeacherByEmail looks up a teacher login record.
func GetTeacherByEmail(db *sql.DB, email string) (*models.Account, error) {
	acct := &models.Account{Role: models.RoleTeacher}
	query := `SELECT id, fname, lname, email, phone, password FROM teachers WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&acct.ID, &acct.FirstName, &acct.LastName, &acct.Email, &acct.Phone, &acct.Password,
	)
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// GetStudentLoginByEmail looks up a student login record.
func GetStudentLoginByEmail(db *sql.DB, email string) (*models.Account, error) {
	acct := &models.Account{Role: models.RoleStudent}
	query := `SELECT id, fname, lname, email, phone, password FROM student_logins WHERE email = $1`

	err := db.QueryRow(query, email).Scan(
		&acct.ID, &acct.FirstName, &acct.LastName, &acct.Email, &acct.Phone, &acct.Password,
	)
	if err != nil {
		return nil, err
	}
	return acct, nil
}
