package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "somangchurch_backend/internals/features/members/members/controller"
	membershipController "somangchurch_backend/internals/features/members/memberships/controller"
	ministryController "somangchurch_backend/internals/features/members/ministries/controller"
	userController "somangchurch_backend/internals/features/users/auth/controller"
)

func MemberUserRoutes(r fiber.Router, db *gorm.DB) {
	members := memberController.NewMemberController(db)
	ministries := ministryController.NewMinistryController(db)
	memberships := membershipController.NewMembershipController(db)

	r.Get("/members", members.ListMembers)
	r.Get("/members/:id", members.GetMember)

	r.Get("/ministries", ministries.ListMinistries)
	r.Get("/ministries/:id", ministries.GetMinistry)

	r.Get("/memberships", memberships.ListMemberships)
}

func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	members := memberController.NewMemberController(db)
	ministries := ministryController.NewMinistryController(db)
	memberships := membershipController.NewMembershipController(db)
	users := userController.NewAuthController(db)

	r.Post("/members", members.CreateMember)
	r.Put("/members/:id", members.UpdateMember)
	r.Delete("/members/:id", members.DeactivateMember)

	r.Post("/ministries", ministries.CreateMinistry)
	r.Put("/ministries/:id", ministries.UpdateMinistry)
	r.Delete("/ministries/:id", ministries.DeleteMinistry)

	r.Post("/memberships", memberships.UpsertMembership)
	r.Post("/memberships/bulk", memberships.BulkUpsertMemberships)
	r.Delete("/memberships/:id", memberships.DeleteMembership)

	r.Post("/users", users.RegisterUser)
	r.Delete("/users/:id", users.DeactivateUser)
}
