package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_id" json:"member_id"`

	MemberName  string  `gorm:"not null;column:member_name" json:"member_name"`
	MemberPhone *string `gorm:"column:member_phone" json:"member_phone,omitempty"`

	MemberBirthDate *time.Time `gorm:"type:date;column:member_birth_date" json:"member_birth_date,omitempty"`

	MemberPhotoURL *string `gorm:"column:member_photo_url" json:"member_photo_url,omitempty"`
	// size-keyed URL map produced by the upload pipeline (external to this service)
	MemberPhotoVariants datatypes.JSON `gorm:"column:member_photo_variants" json:"member_photo_variants,omitempty"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
