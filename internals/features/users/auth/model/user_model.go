package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff accounts only. Congregation members live in the members table and do
// not log in.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserEmail        string `gorm:"size:255;unique;not null;column:user_email" json:"user_email"`
	UserName         string `gorm:"size:50;not null;column:user_name" json:"user_name"`
	UserPasswordHash string `gorm:"not null;column:user_password_hash" json:"-"`

	UserRole string `gorm:"type:varchar(20);not null;default:'staff';column:user_role" json:"user_role"`

	// Staff scoped to one ministry; NULL means church-wide access.
	UserMinistryID *uuid.UUID `gorm:"type:uuid;column:user_ministry_id" json:"user_ministry_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
