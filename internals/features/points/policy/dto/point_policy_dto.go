package dto

import (
	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/points/policy/model"
)

// UpsertPointPolicyRequest writes the status→points table for one ministry,
// or the global default when ministry_id is omitted.
type UpsertPointPolicyRequest struct {
	PointPolicyMinistryID *uuid.UUID `json:"point_policy_ministry_id" validate:"omitempty"`
	PointPolicyPresent    int        `json:"point_policy_present" validate:"min=0,max=1000"`
	PointPolicyLate       int        `json:"point_policy_late" validate:"min=0,max=1000"`
	PointPolicyAbsent     int        `json:"point_policy_absent" validate:"min=0,max=1000"`
}

type PointPolicyResponse struct {
	PointPolicyID         uuid.UUID  `json:"point_policy_id,omitempty"`
	PointPolicyMinistryID *uuid.UUID `json:"point_policy_ministry_id,omitempty"`
	PointPolicyPresent    int        `json:"point_policy_present"`
	PointPolicyLate       int        `json:"point_policy_late"`
	PointPolicyAbsent     int        `json:"point_policy_absent"`
}

func (r UpsertPointPolicyRequest) ToModel() m.PointPolicyModel {
	return m.PointPolicyModel{
		PointPolicyMinistryID: r.PointPolicyMinistryID,
		PointPolicyPresent:    r.PointPolicyPresent,
		PointPolicyLate:       r.PointPolicyLate,
		PointPolicyAbsent:     r.PointPolicyAbsent,
	}
}

func FromPointPolicyModel(mdl m.PointPolicyModel) PointPolicyResponse {
	return PointPolicyResponse{
		PointPolicyID:         mdl.PointPolicyID,
		PointPolicyMinistryID: mdl.PointPolicyMinistryID,
		PointPolicyPresent:    mdl.PointPolicyPresent,
		PointPolicyLate:       mdl.PointPolicyLate,
		PointPolicyAbsent:     mdl.PointPolicyAbsent,
	}
}
