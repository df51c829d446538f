package seeds

import (
	"gorm.io/gorm"

	ministries "somangchurch_backend/internals/seeds/ministries"
	points "somangchurch_backend/internals/seeds/points"
	users "somangchurch_backend/internals/seeds/users"
)

func Run(db *gorm.DB) {
	ministries.SeedMinistries(db)
	points.SeedDefaultPolicy(db)
	users.SeedAdminUser(db)
}
