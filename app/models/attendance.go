package models

import "time"

// Attendance is one student's status for one class on one date. A record is
// unique per (class_id, student_id, date); re-submission overwrites the
// status instead of duplicating the row.
type Attendance struct {
	ID        int              `json:"id"`
	ClassID   int              `json:"class_id"`
	StudentID int              `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Date      time.Time        `json:"date"`
}
