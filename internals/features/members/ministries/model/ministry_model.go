package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MinistryModel struct {
	MinistryID uuid.UUID `gorm:"type:uuid;primaryKey;column:ministry_id" json:"ministry_id"`

	MinistryName string `gorm:"not null;column:ministry_name" json:"ministry_name"`
	MinistrySlug string `gorm:"uniqueIndex;not null;column:ministry_slug" json:"ministry_slug"`

	// choir ministries group rosters by vocal part instead of grade/class
	MinistryIsChoir bool `gorm:"not null;default:false;column:ministry_is_choir" json:"ministry_is_choir"`

	MinistryCreatedAt time.Time      `gorm:"column:ministry_created_at;autoCreateTime" json:"ministry_created_at"`
	MinistryUpdatedAt *time.Time     `gorm:"column:ministry_updated_at;autoUpdateTime" json:"ministry_updated_at,omitempty"`
	MinistryDeletedAt gorm.DeletedAt `gorm:"column:ministry_deleted_at;index" json:"ministry_deleted_at,omitempty"`
}

func (MinistryModel) TableName() string { return "ministries" }

func (m *MinistryModel) BeforeCreate(tx *gorm.DB) error {
	if m.MinistryID == uuid.Nil {
		m.MinistryID = uuid.New()
	}
	return nil
}
