package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance statuses. A NULL status means the sheet row exists but nothing
// was marked yet.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// Session rounds per ministry per day.
const (
	RoundFirst  = "1"
	RoundSecond = "2"
	RoundThird  = "3"
)

// AttendanceRecordModel is one row per (date, ministry, round, member).
// Once confirmed the row is immutable outside the point ledger flow.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordDate       time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_sheet_member;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordMinistryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_sheet_member;column:attendance_record_ministry_id" json:"attendance_record_ministry_id"`
	AttendanceRecordRound      string    `gorm:"not null;uniqueIndex:uq_attendance_sheet_member;column:attendance_record_round" json:"attendance_record_round"`
	AttendanceRecordMemberID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_sheet_member;column:attendance_record_member_id" json:"attendance_record_member_id"`

	AttendanceRecordStatus *string `gorm:"column:attendance_record_status" json:"attendance_record_status,omitempty"`
	AttendanceRecordMemo   *string `gorm:"column:attendance_record_memo" json:"attendance_record_memo,omitempty"`

	AttendanceRecordIsConfirmed bool `gorm:"not null;default:false;column:attendance_record_is_confirmed" json:"attendance_record_is_confirmed"`

	AttendanceRecordCreatedAt time.Time  `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt *time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at,omitempty"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (m *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceRecordID == uuid.Nil {
		m.AttendanceRecordID = uuid.New()
	}
	return nil
}
