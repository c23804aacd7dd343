package main

import (
	"flag"
	"fmt"
	"os"

	"classtrack/app/config"
	"classtrack/app/database"
	"classtrack/app/models"
	"classtrack/app/routes/auth"
)

// Seeds a teacher account from the command line, bypassing the HTTP surface.
func main() {
	fname := flag.String("fname", "", "first name")
	lname := flag.String("lname", "", "last name")
	email := flag.String("email", "", "email address")
	phone := flag.String("phone", "", "phone number")
	password := flag.String("password", "", "plaintext password")
	flag.Parse()

	if *fname == "" || *lname == "" || *email == "" || *password == "" {
		fmt.Println("Usage: add_teacher -fname NAME -lname NAME -email EMAIL -password PASSWORD [-phone PHONE]")
		os.Exit(1)
	}

	config.LoadEnv()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	exists, err := database.EmailRegistered(db, *email)
	if err != nil {
		fmt.Printf("Error checking email: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Printf("Email %s is already registered\n", *email)
		os.Exit(1)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	acct := &models.Account{
		FirstName: *fname,
		LastName:  *lname,
		Email:     *email,
		Phone:     *phone,
		Password:  hashed,
		Role:      models.RoleTeacher,
	}
	if err := database.CreateAccount(db, acct); err != nil {
		fmt.Printf("Error creating teacher: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Teacher created successfully: %s %s (%s)\n", acct.FirstName, acct.LastName, acct.Email)
}
