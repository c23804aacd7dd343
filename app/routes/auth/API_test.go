package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"classtrack/app/config"
)

func setupAuthTest(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	config.AppConfig = &config.Config{
		DB:        db,
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
		Port:      "0",
	}

	app := fiber.New()
	SetupAuthRoutes(app)
	return app, mock
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

const accountCols = "id, fname, lname, email, phone, password"

func TestRegisterAPI(t *testing.T) {
	t.Run("duplicate email is rejected without an insert", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT \(SELECT COUNT`).
			WithArgs("taken@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		body := `{"fname":"Ada","lname":"Lovelace","email":"taken@example.com","password":"secret1","role":"Teacher"}`
		req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, "Email already registered", decodeBody(t, resp.Body)["Error"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("student role lands in student_logins", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT \(SELECT COUNT`).
			WithArgs("ada@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`INSERT INTO student_logins`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		body := `{"fname":"Ada","lname":"Lovelace","email":"ada@example.com","password":"secret1","role":"Student"}`
		req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "Student registered successfully!", decodeBody(t, resp.Body)["Message"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		body := `{"fname":"Ada","email":"ada@example.com"}`
		req := httptest.NewRequest("POST", "/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoginAPI(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("teacher table is checked first", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM teachers`).
			WithArgs("t@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")).
				AddRow(1, "Grace", "Hopper", "t@example.com", "", string(hash)))

		req := httptest.NewRequest("GET", "/login?email=t@example.com&password=secret1", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		out := decodeBody(t, resp.Body)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "Teacher", out["role"])

		var sessionCookie string
		for _, c := range resp.Cookies() {
			if c.Name == "session_token" {
				sessionCookie = c.Value
			}
		}
		require.NotEmpty(t, sessionCookie)
		claims, err := ValidateJWT(sessionCookie)
		require.NoError(t, err)
		assert.Equal(t, "t@example.com", claims.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to the student table", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM teachers`).
			WithArgs("s@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")))
		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM student_logins`).
			WithArgs("s@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")).
				AddRow(2, "Ada", "Lovelace", "s@example.com", "", string(hash)))

		req := httptest.NewRequest("GET", "/login?email=s@example.com&password=secret1", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "Student", decodeBody(t, resp.Body)["role"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email gets the generic rejection", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM teachers`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")))
		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM student_logins`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")))

		req := httptest.NewRequest("GET", "/login?email=nobody@example.com&password=whatever", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp.Body)["message"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong password gets the same rejection", func(t *testing.T) {
		app, mock := setupAuthTest(t)

		mock.ExpectQuery(`SELECT ` + accountCols + ` FROM teachers`).
			WithArgs("t@example.com").
			WillReturnRows(sqlmock.NewRows(strings.Split(accountCols, ", ")).
				AddRow(1, "Grace", "Hopper", "t@example.com", "", string(hash)))

		req := httptest.NewRequest("GET", "/login?email=t@example.com&password=nope", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", decodeBody(t, resp.Body)["message"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
