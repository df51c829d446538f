package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/members/ministries/dto"
	"somangchurch_backend/internals/features/members/ministries/model"
	helper "somangchurch_backend/internals/helpers"
)

type MinistryController struct {
	DB *gorm.DB
}

func NewMinistryController(db *gorm.DB) *MinistryController {
	return &MinistryController{DB: db}
}

// POST /a/ministries
func (ctrl *MinistryController) CreateMinistry(c *fiber.Ctx) error {
	var req dto.CreateMinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB, helper.SlugOptions{
		Table:            "ministries",
		SlugColumn:       "ministry_slug",
		SoftDeleteColumn: "ministry_deleted_at",
		DefaultBase:      "ministry",
	}, req.MinistryName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate slug")
	}

	mdl := req.ToModel(slug)
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create ministry")
	}

	return helper.JsonCreated(c, "Ministry created", dto.FromMinistryModel(mdl))
}

// GET /u/ministries
func (ctrl *MinistryController) ListMinistries(c *fiber.Ctx) error {
	var rows []model.MinistryModel
	if err := ctrl.DB.Order("ministry_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list ministries")
	}

	resps := make([]dto.MinistryResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromMinistryModel(r))
	}
	return helper.JsonOK(c, "", resps)
}

// GET /u/ministries/:id
func (ctrl *MinistryController) GetMinistry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var mdl model.MinistryModel
	if err := ctrl.DB.First(&mdl, "ministry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Ministry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromMinistryModel(mdl))
}

// PATCH /a/ministries/:id
func (ctrl *MinistryController) UpdateMinistry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateMinistryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	if req.MinistryName != nil {
		updates["ministry_name"] = *req.MinistryName
	}
	if req.MinistryIsChoir != nil {
		updates["ministry_is_choir"] = *req.MinistryIsChoir
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.MinistryResponse{MinistryID: id})
	}

	var updated model.MinistryModel
	tx := ctrl.DB.Model(&model.MinistryModel{}).
		Where("ministry_id = ?", id).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update ministry")
	}
	if tx.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Ministry not found")
	}

	return helper.JsonUpdated(c, "Ministry updated", dto.FromMinistryModel(updated))
}

// DELETE /a/ministries/:id (soft delete)
func (ctrl *MinistryController) DeleteMinistry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	tx := ctrl.DB.Where("ministry_id = ?", id).Delete(&model.MinistryModel{})
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete ministry")
	}
	if tx.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Ministry not found")
	}

	return helper.JsonDeleted(c, "Ministry deleted", fiber.Map{"ministry_id": id})
}
