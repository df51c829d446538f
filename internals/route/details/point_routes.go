package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ledgerController "somangchurch_backend/internals/features/points/ledger/controller"
	policyController "somangchurch_backend/internals/features/points/policy/controller"
)

func PointAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := ledgerController.NewPointLedgerController(db)
	policy := policyController.NewPointPolicyController(db)

	r.Post("/points/confirm", ledger.ConfirmSheet)
	r.Get("/points/ledger", ledger.ListLedger)
	r.Get("/points/balances", ledger.ListBalances)
	r.Get("/points/policies", policy.GetPolicy)
	r.Put("/points/policies", policy.UpsertPolicy)
}
