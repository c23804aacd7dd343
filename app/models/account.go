package models

// Account is a login record in either the teachers or student_logins table.
// Teacher and student accounts share the same shape; the table an account
// lives in decides its role.
type Account struct {
	ID        int    `json:"id"`
	FirstName string `json:"fname" validate:"required"`
	LastName  string `json:"lname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"-"`
	Role      Role   `json:"role,omitempty"`
}
