package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/parties/model"
)

/* =========================================================
 * PARTY
 * ========================================================= */

type CreatePartyRequest struct {
	PartyName           string     `json:"party_name" validate:"required,min=1,max=60"`
	PartyMinistryID     uuid.UUID  `json:"party_ministry_id" validate:"required"`
	PartyLeaderMemberID *uuid.UUID `json:"party_leader_member_id" validate:"omitempty"`
}

type UpdatePartyRequest struct {
	PartyName           *string    `json:"party_name" validate:"omitempty,min=1,max=60"`
	PartyLeaderMemberID *uuid.UUID `json:"party_leader_member_id" validate:"omitempty"`
	PartyIsActive       *bool      `json:"party_is_active" validate:"omitempty"`
}

type PartyResponse struct {
	PartyID             uuid.UUID  `json:"party_id"`
	PartyName           string     `json:"party_name"`
	PartyMinistryID     uuid.UUID  `json:"party_ministry_id"`
	PartyLeaderMemberID *uuid.UUID `json:"party_leader_member_id,omitempty"`
	PartyIsActive       bool       `json:"party_is_active"`
	PartyCreatedAt      time.Time  `json:"party_created_at"`
}

func (r CreatePartyRequest) ToModel() m.PartyModel {
	return m.PartyModel{
		PartyName:           r.PartyName,
		PartyMinistryID:     r.PartyMinistryID,
		PartyLeaderMemberID: r.PartyLeaderMemberID,
		PartyIsActive:       true,
	}
}

func (r UpdatePartyRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.PartyName != nil {
		updates["party_name"] = *r.PartyName
	}
	if r.PartyLeaderMemberID != nil {
		updates["party_leader_member_id"] = *r.PartyLeaderMemberID
	}
	if r.PartyIsActive != nil {
		updates["party_is_active"] = *r.PartyIsActive
	}
	return updates
}

func FromPartyModel(mdl m.PartyModel) PartyResponse {
	return PartyResponse{
		PartyID:             mdl.PartyID,
		PartyName:           mdl.PartyName,
		PartyMinistryID:     mdl.PartyMinistryID,
		PartyLeaderMemberID: mdl.PartyLeaderMemberID,
		PartyIsActive:       mdl.PartyIsActive,
		PartyCreatedAt:      mdl.PartyCreatedAt,
	}
}

/* =========================================================
 * PARTY ATTENDANCE
 * ========================================================= */

type PartyAttendanceItem struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	Status   string    `json:"status" validate:"required,oneof=present absent late"`
	Note     *string   `json:"note" validate:"omitempty,max=200"`
}

// SubmitPartyAttendanceRequest records one meeting of one party. Re-submitting
// the same date overwrites earlier statuses member by member.
type SubmitPartyAttendanceRequest struct {
	PartyAttendanceDate string                `json:"party_attendance_date" validate:"required,datetime=2006-01-02"`
	Items               []PartyAttendanceItem `json:"items" validate:"required,min=1,dive"`
}

type PartyAttendanceResponse struct {
	PartyAttendanceID       uuid.UUID `json:"party_attendance_id"`
	PartyAttendancePartyID  uuid.UUID `json:"party_attendance_party_id"`
	PartyAttendanceDate     string    `json:"party_attendance_date"`
	PartyAttendanceMemberID uuid.UUID `json:"party_attendance_member_id"`
	PartyAttendanceStatus   string    `json:"party_attendance_status"`
	PartyAttendanceNote     *string   `json:"party_attendance_note,omitempty"`
}

func FromPartyAttendanceModel(mdl m.PartyAttendanceModel) PartyAttendanceResponse {
	return PartyAttendanceResponse{
		PartyAttendanceID:       mdl.PartyAttendanceID,
		PartyAttendancePartyID:  mdl.PartyAttendancePartyID,
		PartyAttendanceDate:     mdl.PartyAttendanceDate.Format("2006-01-02"),
		PartyAttendanceMemberID: mdl.PartyAttendanceMemberID,
		PartyAttendanceStatus:   mdl.PartyAttendanceStatus,
		PartyAttendanceNote:     mdl.PartyAttendanceNote,
	}
}
