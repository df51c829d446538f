package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/attendance/records/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreateAttendanceSheetRequest opens one sheet: a row per member for a
// (ministry, date, round).
type CreateAttendanceSheetRequest struct {
	AttendanceDate string      `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	MinistryID     uuid.UUID   `json:"ministry_id" validate:"required"`
	Round          string      `json:"round" validate:"required,oneof=1 2 3"`
	MemberIDs      []uuid.UUID `json:"member_ids" validate:"required,min=1"`
}

// UpdateAttendanceRecordRequest patches a single unconfirmed row.
type UpdateAttendanceRecordRequest struct {
	AttendanceRecordStatus *string `json:"attendance_record_status" validate:"omitempty,oneof=present absent late"`
	AttendanceRecordMemo   *string `json:"attendance_record_memo" validate:"omitempty,max=200"`
}

// SheetRequest identifies one sheet for delete / confirm / list.
type SheetRequest struct {
	AttendanceDate string    `query:"date" json:"attendance_date" validate:"required,datetime=2006-01-02"`
	MinistryID     uuid.UUID `query:"ministry_id" json:"ministry_id" validate:"required"`
	Round          string    `query:"round" json:"round" validate:"required,oneof=1 2 3"`
}

type FilterAttendanceRequest struct {
	AttendanceDate string     `query:"date" validate:"required,datetime=2006-01-02"`
	MinistryID     *uuid.UUID `query:"ministry_id" validate:"omitempty"`
	Round          *string    `query:"round" validate:"omitempty,oneof=1 2 3"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID          uuid.UUID `json:"attendance_record_id"`
	AttendanceRecordDate        string    `json:"attendance_record_date"`
	AttendanceRecordMinistryID  uuid.UUID `json:"attendance_record_ministry_id"`
	AttendanceRecordMemberID    uuid.UUID `json:"attendance_record_member_id"`
	AttendanceRecordRound       string    `json:"attendance_record_round"`
	AttendanceRecordStatus      *string   `json:"attendance_record_status,omitempty"`
	AttendanceRecordMemo        *string   `json:"attendance_record_memo,omitempty"`
	AttendanceRecordIsConfirmed bool      `json:"attendance_record_is_confirmed"`
	AttendanceRecordCreatedAt   time.Time `json:"attendance_record_created_at"`
}

func (r CreateAttendanceSheetRequest) ToModels() []m.AttendanceRecordModel {
	date, _ := time.Parse("2006-01-02", r.AttendanceDate)
	models := make([]m.AttendanceRecordModel, 0, len(r.MemberIDs))
	for _, memberID := range r.MemberIDs {
		models = append(models, m.AttendanceRecordModel{
			AttendanceRecordDate:       date,
			AttendanceRecordMinistryID: r.MinistryID,
			AttendanceRecordRound:      r.Round,
			AttendanceRecordMemberID:   memberID,
		})
	}
	return models
}

func FromAttendanceRecordModel(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID:          mdl.AttendanceRecordID,
		AttendanceRecordDate:        mdl.AttendanceRecordDate.Format("2006-01-02"),
		AttendanceRecordMinistryID:  mdl.AttendanceRecordMinistryID,
		AttendanceRecordMemberID:    mdl.AttendanceRecordMemberID,
		AttendanceRecordRound:       mdl.AttendanceRecordRound,
		AttendanceRecordStatus:      mdl.AttendanceRecordStatus,
		AttendanceRecordMemo:        mdl.AttendanceRecordMemo,
		AttendanceRecordIsConfirmed: mdl.AttendanceRecordIsConfirmed,
		AttendanceRecordCreatedAt:   mdl.AttendanceRecordCreatedAt,
	}
}
