package main

import (
	"log"
	"os"
	"time"

	"furniture-catalog-be/internal/model"
	"furniture-catalog-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"
)

// Seeds the initial admin account from ADMIN_USERNAME / ADMIN_PASSWORD.
// Re-running with an existing username is a no-op.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("Error: ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding admin account...")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash password:", err)
	}

	admin := model.AdminUser{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&admin)
	if result.Error != nil {
		color.Red("Seed failed: %v", result.Error)
		os.Exit(1)
	}

	if result.RowsAffected == 0 {
		color.Yellow("Admin %q already exists, nothing to do", username)
		return
	}

	color.Green("✅ Admin %q created", username)
}
