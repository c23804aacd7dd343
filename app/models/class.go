package models

// Class is a teacher-owned class. Code is the external class code entered at
// creation time; TeacherEmail is a soft reference to the owning teacher's
// login email (no foreign key).
type Class struct {
	ID           int    `json:"id"`
	Name         string `json:"cname" validate:"required"`
	Code         string `json:"cid"`
	Description  string `json:"description"`
	TeacherEmail string `json:"teacher_email" validate:"required,email"`
}

// Task is a graded component of a class. Percentage is the task's weight
// toward the final grade; weights for a class are not required to sum to 100.
type Task struct {
	ID         int    `json:"id"`
	ClassID    int    `json:"class_id"`
	TaskName   string `json:"task_name" validate:"required"`
	Percentage int    `json:"percentage" validate:"gte=0,lte=100"`
}
