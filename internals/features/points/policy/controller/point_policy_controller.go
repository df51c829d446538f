package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/points/policy/dto"
	"somangchurch_backend/internals/features/points/policy/model"
	"somangchurch_backend/internals/features/points/policy/service"
	helper "somangchurch_backend/internals/helpers"
)

type PointPolicyController struct {
	DB *gorm.DB
}

func NewPointPolicyController(db *gorm.DB) *PointPolicyController {
	return &PointPolicyController{DB: db}
}

// GET /a/points/policies?ministry_id=
// Falls through ministry row → global row → built-in default, mirroring what
// confirmation will actually use.
func (ctrl *PointPolicyController) GetPolicy(c *fiber.Ctx) error {
	raw := c.Query("ministry_id")
	if raw == "" {
		var row model.PointPolicyModel
		err := ctrl.DB.Where("point_policy_ministry_id IS NULL").Take(&row).Error
		if err == nil {
			return helper.JsonOK(c, "", dto.FromPointPolicyModel(row))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		d := service.DefaultPolicy
		return helper.JsonOK(c, "", dto.PointPolicyResponse{
			PointPolicyPresent: d.Present,
			PointPolicyLate:    d.Late,
			PointPolicyAbsent:  d.Absent,
		})
	}

	ministryID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ministry_id")
	}

	resolved, err := service.New(ctrl.DB).Resolve(ministryID, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.PointPolicyResponse{
		PointPolicyMinistryID: &ministryID,
		PointPolicyPresent:    resolved.Present,
		PointPolicyLate:       resolved.Late,
		PointPolicyAbsent:     resolved.Absent,
	})
}

// PUT /a/points/policies
func (ctrl *PointPolicyController) UpsertPolicy(c *fiber.Ctx) error {
	var req dto.UpsertPointPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "point_policy_ministry_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"point_policy_present", "point_policy_late", "point_policy_absent",
		}),
	}).Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save point policy")
	}

	return helper.JsonUpdated(c, "Point policy saved", dto.FromPointPolicyModel(mdl))
}
