package main

import (
	"log"

	"go-purchase-tracker/internal/config"
	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Resets the bootstrap account password. Useful when the token authenticator
// is enabled and the credentials were lost.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db := database.ConnectDB(cfg.Database)

	email := "admin@example.com"
	var account model.Account
	if err := db.Where("email = ?", email).First(&account).Error; err != nil {
		log.Fatalf("Account %s not found in database: %v", email, err)
	}

	newPassword := "admin123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.Model(&account).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset to: %s", email, newPassword)
}
