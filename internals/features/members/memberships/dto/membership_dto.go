package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/members/memberships/model"
)

type UpsertMembershipRequest struct {
	MembershipMemberID   uuid.UUID `json:"membership_member_id" validate:"required"`
	MembershipMinistryID uuid.UUID `json:"membership_ministry_id" validate:"required"`
	MembershipYear       int       `json:"membership_year" validate:"required,min=2000,max=2100"`

	MembershipPart     *string `json:"membership_part" validate:"omitempty,max=30"`
	MembershipGrade    *int    `json:"membership_grade" validate:"omitempty,min=1,max=13"`
	MembershipClass    *int    `json:"membership_class" validate:"omitempty,min=1,max=99"`
	MembershipPosition *string `json:"membership_position" validate:"omitempty,max=30"`

	MembershipIsLeader bool `json:"membership_is_leader"`
	MembershipIsActive bool `json:"membership_is_active"`
}

// BulkUpsertMembershipRequest carries one ministry/year roster at a time.
type BulkUpsertMembershipRequest struct {
	MembershipMinistryID uuid.UUID                 `json:"membership_ministry_id" validate:"required"`
	MembershipYear       int                       `json:"membership_year" validate:"required,min=2000,max=2100"`
	Rows                 []UpsertMembershipRequest `json:"rows" validate:"required,min=1,dive"`
}

type FilterMembershipRequest struct {
	MinistryID *uuid.UUID `query:"ministry_id" validate:"omitempty"`
	MemberID   *uuid.UUID `query:"member_id" validate:"omitempty"`
	Year       *int       `query:"year" validate:"omitempty,min=2000,max=2100"`
	OnlyActive *bool      `query:"only_active" validate:"omitempty"`
}

type MembershipResponse struct {
	MembershipID         uuid.UUID `json:"membership_id"`
	MembershipMemberID   uuid.UUID `json:"membership_member_id"`
	MembershipMinistryID uuid.UUID `json:"membership_ministry_id"`
	MembershipYear       int       `json:"membership_year"`
	MembershipPart       *string   `json:"membership_part,omitempty"`
	MembershipGrade      *int      `json:"membership_grade,omitempty"`
	MembershipClass      *int      `json:"membership_class,omitempty"`
	MembershipPosition   *string   `json:"membership_position,omitempty"`
	MembershipIsLeader   bool      `json:"membership_is_leader"`
	MembershipIsActive   bool      `json:"membership_is_active"`
	MembershipCreatedAt  time.Time `json:"membership_created_at"`
}

func (r UpsertMembershipRequest) ToModel() m.MembershipModel {
	return m.MembershipModel{
		MembershipMemberID:   r.MembershipMemberID,
		MembershipMinistryID: r.MembershipMinistryID,
		MembershipYear:       r.MembershipYear,
		MembershipPart:       r.MembershipPart,
		MembershipGrade:      r.MembershipGrade,
		MembershipClass:      r.MembershipClass,
		MembershipPosition:   r.MembershipPosition,
		MembershipIsLeader:   r.MembershipIsLeader,
		MembershipIsActive:   r.MembershipIsActive,
	}
}

func FromMembershipModel(mdl m.MembershipModel) MembershipResponse {
	return MembershipResponse{
		MembershipID:         mdl.MembershipID,
		MembershipMemberID:   mdl.MembershipMemberID,
		MembershipMinistryID: mdl.MembershipMinistryID,
		MembershipYear:       mdl.MembershipYear,
		MembershipPart:       mdl.MembershipPart,
		MembershipGrade:      mdl.MembershipGrade,
		MembershipClass:      mdl.MembershipClass,
		MembershipPosition:   mdl.MembershipPosition,
		MembershipIsLeader:   mdl.MembershipIsLeader,
		MembershipIsActive:   mdl.MembershipIsActive,
		MembershipCreatedAt:  mdl.MembershipCreatedAt,
	}
}
