package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classtrack/app/models"
)

func TestCreateClassWithTasks(t *testing.T) {
	t.Run("class and tasks commit together", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		class := &models.Class{Name: "Algebra", Code: "MATH101", Description: "intro", TeacherEmail: "t@example.com"}
		tasks := []*models.Task{
			{TaskName: "midterm", Percentage: 40},
			{TaskName: "final", Percentage: 60},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO classes`).
			WithArgs("Algebra", "MATH101", "intro", "t@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO tasks (class_id, task_name, percentage) VALUES ($1, $2, $3),($4, $5, $6)`)).
			WithArgs(5, "midterm", 40, 5, "final", 60).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, CreateClassWithTasks(db, class, tasks))
		assert.Equal(t, 5, class.ID)
		assert.Equal(t, 5, tasks[0].ClassID)
		assert.Equal(t, 5, tasks[1].ClassID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty task list creates the class alone", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO classes`).
			WithArgs("History", "HIST1", "", "t@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectCommit()

		class := &models.Class{Name: "History", Code: "HIST1", TeacherEmail: "t@example.com"}
		require.NoError(t, CreateClassWithTasks(db, class, nil))
		assert.Equal(t, 9, class.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed task insert rolls back the class", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO classes`).
			WithArgs("Physics", "PHY1", "", "t@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectExec(`INSERT INTO tasks`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		class := &models.Class{Name: "Physics", Code: "PHY1", TeacherEmail: "t@example.com"}
		err = CreateClassWithTasks(db, class, []*models.Task{{TaskName: "lab", Percentage: 100}})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetClassesByTeacher(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "cname", "cid", "description", "teacher_email"}
	mock.ExpectQuery(`SELECT id, cname, cid, description, teacher_email FROM classes WHERE teacher_email = \$1`).
		WithArgs("t@example.com").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "Algebra", "MATH101", "intro", "t@example.com").
			AddRow(2, "Geometry", "MATH102", "", "t@example.com"))

	classes, err := GetClassesByTeacher(db, "t@example.com")
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Algebra", classes[0].Name)
	assert.Equal(t, "MATH102", classes[1].Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetClassName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT cname FROM classes WHERE id = \$1`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"cname"}).AddRow("Algebra"))

		name, err := GetClassName(db, 1)
		require.NoError(t, err)
		assert.Equal(t, "Algebra", name)
	})

	t.Run("missing class maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT cname FROM classes WHERE id = \$1`).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"cname"}))

		_, err := GetClassName(db, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
