package auth

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
	"classtrack/app/validation"
)

// RegisterAPI creates a teacher or student login account. Email uniqueness
// is checked across both account tables before the insert.
func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		FirstName string `json:"fname" validate:"required"`
		LastName  string `json:"lname" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"phone"`
		Password  string `json:"password" validate:"required,min=6"`
		Role      string `json:"role" validate:"required"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"Error": "Invalid request"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"Error": err.Error()})
	}

	exists, err := database.EmailRegistered(config.GetDB(), req.Email)
	if err != nil {
		log.Printf("Error checking email: %v", err)
		return c.Status(500).JSON(fiber.Map{"Error": "Database error"})
	}
	if exists {
		return c.Status(400).JSON(fiber.Map{"Error": "Email already registered"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"Error": "Failed to hash password"})
	}

	// "Student" goes to the student table, any other role to the teacher table.
	role := models.RoleTeacher
	if req.Role == string(models.RoleStudent) {
		role = models.RoleStudent
	}

	acct := &models.Account{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  hashedPassword,
		Role:      role,
	}
	if err := database.CreateAccount(config.GetDB(), acct); err != nil {
		log.Printf("Error inserting account: %v", err)
		return c.Status(500).JSON(fiber.Map{"Error": "Database insertion failed"})
	}

	return c.JSON(fiber.Map{"Message": fmt.Sprintf("%s registered successfully!", req.Role)})
}

// LoginAPI authenticates against the teacher table first, then the student
// table. Responses never reveal which table matched.
func LoginAPI(c *fiber.Ctx) error {
	email := c.Query("email")
	password := c.Query("password")

	acct, err := database.GetTeacherByEmail(config.GetDB(), email)
	if err == sql.ErrNoRows {
		acct, err = database.GetStudentLoginByEmail(config.GetDB(), email)
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid email or password"})
		}
	}
	if err != nil {
		log.Printf("Error retrieving login account: %v", err)
		return c.Status(500).JSON(fiber.Map{"Error": "Database error"})
	}

	if !CheckPasswordHash(password, acct.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "message": "Invalid email or password"})
	}

	token, err := GenerateJWT(acct.Email, acct.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"Error": "Failed to generate token"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"success": true, "message": "Login successful", "role": acct.Role})
}

// LogoutAPI clears the session cookie.
func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "session_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}
