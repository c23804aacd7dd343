package models

// AttendanceStatus defines the possible status values for a student's daily attendance.
type AttendanceStatus string

const (
	StatusSelect  AttendanceStatus = "select"
	StatusHere    AttendanceStatus = "here"
	StatusNotHere AttendanceStatus = "not_here"
)

// IsValid reports whether s is one of the known attendance statuses.
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case StatusSelect, StatusHere, StatusNotHere:
		return true
	}
	return false
}

// Role defines the account types that can register and log in.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RoleStudent Role = "Student"
)
