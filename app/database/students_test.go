package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classtrack/app/models"
)

func TestCreateStudent(t *testing.T) {
	t.Run("zero class id writes nothing", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		student := &models.Student{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: 17}
		err = CreateStudent(db, student, nil)
		assert.ErrorIs(t, err, ErrInvalidClassID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil grades stored as empty object", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO students`).
			WithArgs("Ada", "Lovelace", "ada@example.com", 17, 1, "{}").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		student := &models.Student{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: 17, ClassID: 1}
		require.NoError(t, CreateStudent(db, student, nil))
		assert.Equal(t, 4, student.ID)
		assert.Equal(t, "{}", student.Grades)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("grades serialized before insert", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO students`).
			WithArgs("Ada", "Lovelace", "ada@example.com", 17, 1, `{"math-50":"80"}`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		student := &models.Student{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Age: 17, ClassID: 1}
		require.NoError(t, CreateStudent(db, student, map[string]string{"math-50": "80"}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetStudentsByEmail(t *testing.T) {
	cols := []string{"id", "first_name", "last_name", "email", "age", "class_id", "grades"}

	t.Run("deserializes grades per enrollment", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, first_name, last_name, email, age, class_id, grades`).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, "Ada", "Lovelace", "ada@example.com", 17, 1, `{"math-50":"80"}`).
				AddRow(2, "Ada", "Lovelace", "ada@example.com", 17, 3, nil))

		students, err := GetStudentsByEmail(db, "ada@example.com")
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, map[string]string{"math-50": "80"}, students[0].Grades)
		assert.Empty(t, students[1].Grades)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no enrollments maps to ErrNotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, first_name, last_name, email, age, class_id, grades`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(cols))

		_, err = GetStudentsByEmail(db, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateStudentGrades(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE students SET grades = \$1 WHERE id = \$2`).
		WithArgs(`{"math-50":"95"}`, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, UpdateStudentGrades(db, 4, map[string]string{"math-50": "95"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
