package points

import (
	"log"

	"gorm.io/gorm"

	"somangchurch_backend/internals/features/points/policy/model"
	"somangchurch_backend/internals/features/points/policy/service"
)

// SeedDefaultPolicy writes the global (NULL-ministry) row so the status→points
// table is visible and editable from the admin screen from day one.
func SeedDefaultPolicy(db *gorm.DB) {
	var existing model.PointPolicyModel
	if err := db.Where("point_policy_ministry_id IS NULL").First(&existing).Error; err == nil {
		return
	}

	d := service.DefaultPolicy
	mdl := model.PointPolicyModel{
		PointPolicyPresent: d.Present,
		PointPolicyLate:    d.Late,
		PointPolicyAbsent:  d.Absent,
	}
	if err := db.Create(&mdl).Error; err != nil {
		log.Printf("[WARN] seed default point policy failed: %v", err)
		return
	}
	log.Println("[INFO] seeded default point policy")
}
