package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointPolicyModel is the status→points table. A row with a NULL ministry id
// is the global default; a ministry row overrides it.
type PointPolicyModel struct {
	PointPolicyID uuid.UUID `gorm:"type:uuid;primaryKey;column:point_policy_id" json:"point_policy_id"`

	PointPolicyMinistryID *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:point_policy_ministry_id" json:"point_policy_ministry_id,omitempty"`

	PointPolicyPresent int `gorm:"not null;default:20;column:point_policy_present" json:"point_policy_present"`
	PointPolicyLate    int `gorm:"not null;default:10;column:point_policy_late" json:"point_policy_late"`
	PointPolicyAbsent  int `gorm:"not null;default:5;column:point_policy_absent" json:"point_policy_absent"`

	PointPolicyCreatedAt time.Time  `gorm:"column:point_policy_created_at;autoCreateTime" json:"point_policy_created_at"`
	PointPolicyUpdatedAt *time.Time `gorm:"column:point_policy_updated_at;autoUpdateTime" json:"point_policy_updated_at,omitempty"`
}

func (PointPolicyModel) TableName() string { return "point_policies" }

func (m *PointPolicyModel) BeforeCreate(tx *gorm.DB) error {
	if m.PointPolicyID == uuid.Nil {
		m.PointPolicyID = uuid.New()
	}
	return nil
}
