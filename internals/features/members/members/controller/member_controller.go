package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/members/members/dto"
	"somangchurch_backend/internals/features/members/members/model"
	helper "somangchurch_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /a/members
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create member")
	}

	return helper.JsonCreated(c, "Member created", dto.FromMemberModel(mdl))
}

/* ===================== LIST ===================== */
// GET /u/members?search=&ministry_id=&year=&page=&per_page=
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	var req dto.FilterMemberRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MemberModel{})
	if req.Search != nil && *req.Search != "" {
		q = q.Where("member_name ILIKE ?", "%"+*req.Search+"%")
	}
	if req.MinistryID != nil {
		sub := ctrl.DB.Table("memberships").
			Select("membership_member_id").
			Where("membership_ministry_id = ? AND membership_is_active = ?", *req.MinistryID, true)
		if req.Year != nil {
			sub = sub.Where("membership_year = ?", *req.Year)
		}
		q = q.Where("member_id IN (?)", sub)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count members")
	}

	var rows []model.MemberModel
	if err := q.Order("member_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list members")
	}

	resps := make([]dto.MemberResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromMemberModel(r))
	}

	return helper.JsonList(c, "", resps, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== DETAIL ===================== */
// GET /u/members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mdl model.MemberModel
	if err := ctrl.DB.First(&mdl, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.FromMemberModel(mdl))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /a/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.MemberResponse{MemberID: id})
	}

	var updated model.MemberModel
	tx := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update member")
	}
	if tx.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}

	return helper.JsonUpdated(c, "Member updated", dto.FromMemberModel(updated))
}

/* ===================== DEACTIVATE ===================== */
// DELETE /a/members/:id
// Members are never hard-deleted: this deactivates all active memberships.
func (ctrl *MemberController) DeactivateMember(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.MemberModel{}).
		Where("member_id = ?", id).
		Count(&exists).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if exists == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Member not found")
	}

	if err := ctrl.DB.Table("memberships").
		Where("membership_member_id = ? AND membership_is_active = ?", id, true).
		Update("membership_is_active", false).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate memberships")
	}

	return helper.JsonDeleted(c, "Member deactivated", fiber.Map{"member_id": id})
}
