package main

import (
	"log"
	"os"

	"github.com/stayloop/stayloop/internal/config"
	"github.com/stayloop/stayloop/internal/database"
	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/internal/utils"
)

// Seeds the initial admin account. Admin-only endpoints are unreachable
// without at least one admin user, so this runs once at deploy time.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	adminFirstName := os.Getenv("ADMIN_FIRST_NAME")
	adminLastName := os.Getenv("ADMIN_LAST_NAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminFirstName == "" || adminLastName == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_FIRST_NAME, ADMIN_LAST_NAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		Base:         models.NewBase(),
		FirstName:    adminFirstName,
		LastName:     adminLastName,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		IsAdmin:      true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.Email)
}
