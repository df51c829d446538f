package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyModel struct {
	PartyID uuid.UUID `gorm:"type:uuid;primaryKey;column:party_id" json:"party_id"`

	PartyName       string    `gorm:"not null;column:party_name" json:"party_name"`
	PartyMinistryID uuid.UUID `gorm:"type:uuid;not null;index;column:party_ministry_id" json:"party_ministry_id"`

	PartyLeaderMemberID *uuid.UUID `gorm:"type:uuid;column:party_leader_member_id" json:"party_leader_member_id,omitempty"`

	PartyIsActive bool `gorm:"not null;default:true;column:party_is_active" json:"party_is_active"`

	PartyCreatedAt time.Time      `gorm:"column:party_created_at;autoCreateTime" json:"party_created_at"`
	PartyUpdatedAt *time.Time     `gorm:"column:party_updated_at;autoUpdateTime" json:"party_updated_at,omitempty"`
	PartyDeletedAt gorm.DeletedAt `gorm:"column:party_deleted_at;index" json:"party_deleted_at,omitempty"`
}

func (PartyModel) TableName() string { return "parties" }

func (m *PartyModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartyID == uuid.Nil {
		m.PartyID = uuid.New()
	}
	return nil
}
