package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "somangchurch_backend/internals/features/members/members/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateMemberRequest struct {
	MemberName      string  `json:"member_name" validate:"required,max=80"`
	MemberPhone     *string `json:"member_phone" validate:"omitempty,max=20"`
	MemberBirthDate *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`
	MemberPhotoURL  *string `json:"member_photo_url" validate:"omitempty,url"`
}

type UpdateMemberRequest struct {
	MemberName      *string `json:"member_name" validate:"omitempty,max=80"`
	MemberPhone     *string `json:"member_phone" validate:"omitempty,max=20"`
	MemberBirthDate *string `json:"member_birth_date" validate:"omitempty,datetime=2006-01-02"`
	MemberPhotoURL  *string `json:"member_photo_url" validate:"omitempty,url"`
}

type FilterMemberRequest struct {
	Search     *string    `query:"search" validate:"omitempty,max=80"`
	MinistryID *uuid.UUID `query:"ministry_id" validate:"omitempty"`
	Year       *int       `query:"year" validate:"omitempty,min=2000,max=2100"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type MemberResponse struct {
	MemberID            uuid.UUID      `json:"member_id"`
	MemberName          string         `json:"member_name"`
	MemberPhone         *string        `json:"member_phone,omitempty"`
	MemberBirthDate     *string        `json:"member_birth_date,omitempty"`
	MemberPhotoURL      *string        `json:"member_photo_url,omitempty"`
	MemberPhotoVariants datatypes.JSON `json:"member_photo_variants,omitempty"`
	MemberCreatedAt     time.Time      `json:"member_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateMemberRequest) ToModel() m.MemberModel {
	mdl := m.MemberModel{
		MemberName:     r.MemberName,
		MemberPhone:    r.MemberPhone,
		MemberPhotoURL: r.MemberPhotoURL,
	}
	if r.MemberBirthDate != nil {
		if d, err := time.Parse("2006-01-02", *r.MemberBirthDate); err == nil {
			mdl.MemberBirthDate = &d
		}
	}
	return mdl
}

// ToUpdates builds a partial column map; nil fields are left untouched.
func (r UpdateMemberRequest) ToUpdates() map[string]any {
	updates := map[string]any{}
	if r.MemberName != nil {
		updates["member_name"] = *r.MemberName
	}
	if r.MemberPhone != nil {
		updates["member_phone"] = *r.MemberPhone
	}
	if r.MemberBirthDate != nil {
		if d, err := time.Parse("2006-01-02", *r.MemberBirthDate); err == nil {
			updates["member_birth_date"] = d
		}
	}
	if r.MemberPhotoURL != nil {
		updates["member_photo_url"] = *r.MemberPhotoURL
	}
	return updates
}

func FromMemberModel(mdl m.MemberModel) MemberResponse {
	resp := MemberResponse{
		MemberID:            mdl.MemberID,
		MemberName:          mdl.MemberName,
		MemberPhone:         mdl.MemberPhone,
		MemberPhotoURL:      mdl.MemberPhotoURL,
		MemberPhotoVariants: mdl.MemberPhotoVariants,
		MemberCreatedAt:     mdl.MemberCreatedAt,
	}
	if mdl.MemberBirthDate != nil {
		s := mdl.MemberBirthDate.Format("2006-01-02")
		resp.MemberBirthDate = &s
	}
	return resp
}
