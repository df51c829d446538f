package users

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"somangchurch_backend/internals/features/users/auth/model"
)

// SeedAdminUser bootstraps the first admin account from ADMIN_EMAIL /
// ADMIN_PASSWORD. Skipped when the env vars are unset or the email exists.
func SeedAdminUser(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.UserModel
	if err := db.Where("user_email = ?", email).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[WARN] seed admin user failed: %v", err)
		return
	}

	user := model.UserModel{
		UserEmail:        email,
		UserName:         "관리자",
		UserPasswordHash: string(hash),
		UserRole:         "admin",
		UserIsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[WARN] seed admin user failed: %v", err)
		return
	}
	log.Printf("[INFO] seeded admin user %s", email)
}
