package ministries

import (
	"log"

	"gorm.io/gorm"

	"somangchurch_backend/internals/features/members/ministries/model"
)

type ministrySeed struct {
	Name    string
	Slug    string
	IsChoir bool
}

var defaults = []ministrySeed{
	{Name: "유치부", Slug: "kindergarten"},
	{Name: "유년부", Slug: "elementary-lower"},
	{Name: "초등부", Slug: "elementary-upper"},
	{Name: "중등부", Slug: "middle-school"},
	{Name: "고등부", Slug: "high-school"},
	{Name: "할렐루야 찬양대", Slug: "hallelujah-choir", IsChoir: true},
	{Name: "호산나 찬양대", Slug: "hosanna-choir", IsChoir: true},
}

func SeedMinistries(db *gorm.DB) {
	for _, s := range defaults {
		var existing model.MinistryModel
		if err := db.Where("ministry_slug = ?", s.Slug).First(&existing).Error; err == nil {
			continue
		}

		mdl := model.MinistryModel{
			MinistryName:    s.Name,
			MinistrySlug:    s.Slug,
			MinistryIsChoir: s.IsChoir,
		}
		if err := db.Create(&mdl).Error; err != nil {
			log.Printf("[WARN] seed ministry %s failed: %v", s.Slug, err)
			continue
		}
		log.Printf("[INFO] seeded ministry %s", s.Slug)
	}
}
