package database

import (
	"database/sql"
	"fmt"
	"strings"

	"classtrack/app/models"
)

type attendanceKey struct {
	classID   int
	studentID int
	date      string
}

// SaveAttendance stores a batch of attendance records with one conditional
// upsert keyed on (class_id, student_id, date): new keys insert, existing
// keys keep the latest status. Duplicate keys within the batch collapse to
// the last occurrence so the statement never touches a row twice.
func SaveAttendance(db *sql.DB, records []*models.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	deduped := make([]*models.Attendance, 0, len(records))
	seen := make(map[attendanceKey]int, len(records))
	for _, rec := range records {
		key := attendanceKey{rec.ClassID, rec.StudentID, rec.Date.Format("2006-01-02")}
		if i, ok := seen[key]; ok {
			deduped[i] = rec
			continue
		}
		seen[key] = len(deduped)
		deduped = append(deduped, rec)
	}

	valueStrings := make([]string, 0, len(deduped))
	valueArgs := make([]interface{}, 0, len(deduped)*4)
	for i, rec := range deduped {
		valueStrings = append(valueStrings, fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4))
		valueArgs = append(valueArgs, rec.ClassID, rec.StudentID, rec.Status, rec.Date)
	}

	query := fmt.Sprintf(`INSERT INTO attendance (class_id, student_id, status, date) VALUES %s
	          ON CONFLICT (class_id, student_id, date) DO UPDATE SET status = EXCLUDED.status`,
		strings.Join(valueStrings, ","))

	_, err := db.Exec(query, valueArgs...)
	return err
}

func GetAttendanceByStudent(db *sql.DB, studentID int) ([]*models.Attendance, error) {
	query := `SELECT id, class_id, student_id, status, date FROM attendance WHERE student_id = $1`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		rec := &models.Attendance{}
		if err := rows.Scan(&rec.ID, &rec.ClassID, &rec.StudentID, &rec.Status, &rec.Date); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
