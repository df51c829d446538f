package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attmodel "somangchurch_backend/internals/features/attendance/records/model"
	"somangchurch_backend/internals/features/points/policy/model"
)

// PointPolicy is the resolved status→points table used by confirmation.
type PointPolicy struct {
	Present int
	Late    int
	Absent  int
}

// DefaultPolicy applies when neither a ministry row nor a global row exists.
var DefaultPolicy = PointPolicy{Present: 20, Late: 10, Absent: 5}

func (p PointPolicy) PointsFor(status string) (int, bool) {
	switch status {
	case attmodel.StatusPresent:
		return p.Present, true
	case attmodel.StatusLate:
		return p.Late, true
	case attmodel.StatusAbsent:
		return p.Absent, true
	default:
		return 0, false
	}
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// Resolve returns the policy for a ministry: ministry row → global row →
// built-in default. tx may be nil.
func (s *Service) Resolve(ministryID uuid.UUID, tx *gorm.DB) (PointPolicy, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	var row model.PointPolicyModel
	err := db.Where("point_policy_ministry_id = ?", ministryID).Take(&row).Error
	if err == nil {
		return fromModel(row), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return PointPolicy{}, err
	}

	err = db.Where("point_policy_ministry_id IS NULL").Take(&row).Error
	if err == nil {
		return fromModel(row), nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultPolicy, nil
	}
	return PointPolicy{}, err
}

func fromModel(row model.PointPolicyModel) PointPolicy {
	return PointPolicy{
		Present: row.PointPolicyPresent,
		Late:    row.PointPolicyLate,
		Absent:  row.PointPolicyAbsent,
	}
}
