package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/members/ministries/model"
)

type CreateMinistryRequest struct {
	MinistryName    string `json:"ministry_name" validate:"required,max=60"`
	MinistryIsChoir bool   `json:"ministry_is_choir"`
}

type UpdateMinistryRequest struct {
	MinistryName    *string `json:"ministry_name" validate:"omitempty,max=60"`
	MinistryIsChoir *bool   `json:"ministry_is_choir"`
}

type MinistryResponse struct {
	MinistryID        uuid.UUID `json:"ministry_id"`
	MinistryName      string    `json:"ministry_name"`
	MinistrySlug      string    `json:"ministry_slug"`
	MinistryIsChoir   bool      `json:"ministry_is_choir"`
	MinistryCreatedAt time.Time `json:"ministry_created_at"`
}

func (r CreateMinistryRequest) ToModel(slug string) m.MinistryModel {
	return m.MinistryModel{
		MinistryName:    r.MinistryName,
		MinistrySlug:    slug,
		MinistryIsChoir: r.MinistryIsChoir,
	}
}

func FromMinistryModel(mdl m.MinistryModel) MinistryResponse {
	return MinistryResponse{
		MinistryID:        mdl.MinistryID,
		MinistryName:      mdl.MinistryName,
		MinistrySlug:      mdl.MinistrySlug,
		MinistryIsChoir:   mdl.MinistryIsChoir,
		MinistryCreatedAt: mdl.MinistryCreatedAt,
	}
}
