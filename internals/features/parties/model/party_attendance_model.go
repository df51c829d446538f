package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Party attendance statuses mirror the main attendance sheet.
const (
	PartyStatusPresent = "present"
	PartyStatusAbsent  = "absent"
	PartyStatusLate    = "late"
)

// One row per (party, date, member). Upserts overwrite the status, so a
// leader can re-submit a meeting without duplicating rows.
type PartyAttendanceModel struct {
	PartyAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:party_attendance_id" json:"party_attendance_id"`

	PartyAttendancePartyID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_party_attendance_meeting;column:party_attendance_party_id" json:"party_attendance_party_id"`
	PartyAttendanceDate     time.Time `gorm:"type:date;not null;uniqueIndex:uq_party_attendance_meeting;column:party_attendance_date" json:"party_attendance_date"`
	PartyAttendanceMemberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_party_attendance_meeting;column:party_attendance_member_id" json:"party_attendance_member_id"`

	PartyAttendanceStatus string  `gorm:"not null;column:party_attendance_status" json:"party_attendance_status"`
	PartyAttendanceNote   *string `gorm:"column:party_attendance_note" json:"party_attendance_note,omitempty"`

	PartyAttendanceCreatedAt time.Time  `gorm:"column:party_attendance_created_at;autoCreateTime" json:"party_attendance_created_at"`
	PartyAttendanceUpdatedAt *time.Time `gorm:"column:party_attendance_updated_at;autoUpdateTime" json:"party_attendance_updated_at,omitempty"`
}

func (PartyAttendanceModel) TableName() string { return "party_attendances" }

func (m *PartyAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartyAttendanceID == uuid.Nil {
		m.PartyAttendanceID = uuid.New()
	}
	return nil
}
