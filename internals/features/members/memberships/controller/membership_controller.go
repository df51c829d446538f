package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/members/memberships/dto"
	"somangchurch_backend/internals/features/members/memberships/model"
	helper "somangchurch_backend/internals/helpers"
)

type MembershipController struct {
	DB *gorm.DB
}

func NewMembershipController(db *gorm.DB) *MembershipController {
	return &MembershipController{DB: db}
}

/* ===================== UPSERT (single) ===================== */
// POST /a/memberships
// (member, ministry, year) is the natural key; re-posting updates in place.
func (ctrl *MembershipController) UpsertMembership(c *fiber.Ctx) error {
	var req dto.UpsertMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "membership_member_id"},
			{Name: "membership_ministry_id"},
			{Name: "membership_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"membership_part", "membership_grade", "membership_class",
			"membership_position", "membership_is_leader", "membership_is_active",
		}),
	}).Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save membership")
	}

	return helper.JsonCreated(c, "Membership saved", dto.FromMembershipModel(mdl))
}

/* ===================== BULK UPSERT ===================== */
// POST /a/memberships/bulk
// One ministry/year roster per call; every row is forced onto that scope.
func (ctrl *MembershipController) BulkUpsertMemberships(c *fiber.Ctx) error {
	var req dto.BulkUpsertMembershipRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	models := make([]model.MembershipModel, 0, len(req.Rows))
	for _, row := range req.Rows {
		row.MembershipMinistryID = req.MembershipMinistryID
		row.MembershipYear = req.MembershipYear
		models = append(models, row.ToModel())
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "membership_member_id"},
			{Name: "membership_ministry_id"},
			{Name: "membership_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"membership_part", "membership_grade", "membership_class",
			"membership_position", "membership_is_leader", "membership_is_active",
		}),
	}).Create(&models).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save memberships")
	}

	resps := make([]dto.MembershipResponse, 0, len(models))
	for _, mdl := range models {
		resps = append(resps, dto.FromMembershipModel(mdl))
	}
	return helper.JsonCreated(c, "Memberships saved", resps)
}

/* ===================== LIST ===================== */
// GET /u/memberships?ministry_id=&member_id=&year=&only_active=
func (ctrl *MembershipController) ListMemberships(c *fiber.Ctx) error {
	var req dto.FilterMembershipRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	q := ctrl.DB.Model(&model.MembershipModel{})
	if req.MinistryID != nil {
		q = q.Where("membership_ministry_id = ?", *req.MinistryID)
	}
	if req.MemberID != nil {
		q = q.Where("membership_member_id = ?", *req.MemberID)
	}
	if req.Year != nil {
		q = q.Where("membership_year = ?", *req.Year)
	}
	if req.OnlyActive != nil && *req.OnlyActive {
		q = q.Where("membership_is_active = ?", true)
	}

	var rows []model.MembershipModel
	if err := q.Order("membership_year DESC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list memberships")
	}

	resps := make([]dto.MembershipResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromMembershipModel(r))
	}
	return helper.JsonOK(c, "", resps)
}

/* ===================== DELETE ===================== */
// DELETE /a/memberships/:id (soft delete)
func (ctrl *MembershipController) DeleteMembership(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	tx := ctrl.DB.Where("membership_id = ?", id).Delete(&model.MembershipModel{})
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete membership")
	}
	if tx.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Membership not found")
	}

	return helper.JsonDeleted(c, "Membership deleted", fiber.Map{"membership_id": id})
}
