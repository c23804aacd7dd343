package models

import "encoding/json"

// Student is a student's enrollment record within a class, distinct from the
// login account of the same person. Grades holds the stored serialization of
// the grades mapping, keyed "{taskName}-{percentage}".
type Student struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       int    `json:"age" validate:"gte=0"`
	ClassID   int    `json:"classId"`
	Grades    string `json:"grades"`
}

// StudentWithGrades is the student-facing view with the grades mapping
// deserialized.
type StudentWithGrades struct {
	ID        int               `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Age       int               `json:"age"`
	ClassID   int               `json:"classId"`
	Grades    map[string]string `json:"grades"`
}

// ParseGrades deserializes the stored grades mapping. Absent or unparsable
// data yields an empty map, never an error.
func (s *Student) ParseGrades() map[string]string {
	if s.Grades == "" {
		return map[string]string{}
	}
	var grades map[string]string
	if err := json.Unmarshal([]byte(s.Grades), &grades); err != nil || grades == nil {
		return map[string]string{}
	}
	return grades
}

// WithGrades converts s into its deserialized view.
func (s *Student) WithGrades() *StudentWithGrades {
	return &StudentWithGrades{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Age:       s.Age,
		ClassID:   s.ClassID,
		Grades:    s.ParseGrades(),
	}
}
