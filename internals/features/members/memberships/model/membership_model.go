package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipModel is the year-scoped link between a member and a ministry.
// One row per (member, ministry, year).
type MembershipModel struct {
	MembershipID uuid.UUID `gorm:"type:uuid;primaryKey;column:membership_id" json:"membership_id"`

	MembershipMemberID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_membership_member_ministry_year;column:membership_member_id" json:"membership_member_id"`
	MembershipMinistryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_membership_member_ministry_year;column:membership_ministry_id" json:"membership_ministry_id"`
	MembershipYear       int       `gorm:"not null;uniqueIndex:uq_membership_member_ministry_year;column:membership_year" json:"membership_year"`

	MembershipPart     *string `gorm:"column:membership_part" json:"membership_part,omitempty"`
	MembershipGrade    *int    `gorm:"column:membership_grade" json:"membership_grade,omitempty"`
	MembershipClass    *int    `gorm:"column:membership_class" json:"membership_class,omitempty"`
	MembershipPosition *string `gorm:"column:membership_position" json:"membership_position,omitempty"`

	MembershipIsLeader bool `gorm:"not null;default:false;column:membership_is_leader" json:"membership_is_leader"`
	MembershipIsActive bool `gorm:"not null;default:true;column:membership_is_active" json:"membership_is_active"`

	MembershipCreatedAt time.Time      `gorm:"column:membership_created_at;autoCreateTime" json:"membership_created_at"`
	MembershipUpdatedAt *time.Time     `gorm:"column:membership_updated_at;autoUpdateTime" json:"membership_updated_at,omitempty"`
	MembershipDeletedAt gorm.DeletedAt `gorm:"column:membership_deleted_at;index" json:"membership_deleted_at,omitempty"`
}

func (MembershipModel) TableName() string { return "memberships" }

func (m *MembershipModel) BeforeCreate(tx *gorm.DB) error {
	if m.MembershipID == uuid.Nil {
		m.MembershipID = uuid.New()
	}
	return nil
}
