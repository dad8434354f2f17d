package migration

import (
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all tables and seeds demo users if the
// users table is empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Deal{},
		&domain.Activity{},
		&domain.Memo{},
		&domain.MemoVersion{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.User{}).Count(&count)
	if count == 0 {
		return SeedUsers(db)
	}

	return nil
}

// SeedUsers inserts one demo account per role. Skips accounts whose email
// already exists, so the seed command is safe to re-run.
func SeedUsers(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []domain.User{
		{Email: "admin@dealflow.dev", HashedPassword: string(hash), Role: domain.RoleAdmin, IsActive: true},
		{Email: "analyst@dealflow.dev", HashedPassword: string(hash), Role: domain.RoleAnalyst, IsActive: true},
		{Email: "partner@dealflow.dev", HashedPassword: string(hash), Role: domain.RolePartner, IsActive: true},
	}

	for _, user := range users {
		var existing int64
		db.Model(&domain.User{}).Where("email = ?", user.Email).Count(&existing)
		if existing > 0 {
			continue
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}

	return nil
}
