package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/parties/dto"
	"somangchurch_backend/internals/features/parties/model"
	helper "somangchurch_backend/internals/helpers"
)

type PartyController struct {
	DB *gorm.DB
}

func NewPartyController(db *gorm.DB) *PartyController {
	return &PartyController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /a/parties
func (ctrl *PartyController) CreateParty(c *fiber.Ctx) error {
	var req dto.CreatePartyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create party")
	}
	return helper.JsonCreated(c, "Party created", dto.FromPartyModel(mdl))
}

/* ===================== LIST ===================== */
// GET /u/parties?ministry_id=&active=
func (ctrl *PartyController) ListParties(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.PartyModel{})

	if raw := c.Query("ministry_id"); raw != "" {
		ministryID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid ministry_id")
		}
		q = q.Where("party_ministry_id = ?", ministryID)
	}
	if raw := c.Query("active"); raw != "" {
		q = q.Where("party_is_active = ?", raw == "true")
	}

	var rows []model.PartyModel
	if err := q.Order("party_name ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list parties")
	}

	resps := make([]dto.PartyResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromPartyModel(r))
	}
	return helper.JsonOK(c, "", resps)
}

/* ===================== UPDATE ===================== */
// PUT /a/parties/:id
func (ctrl *PartyController) UpdateParty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid party ID")
	}

	var req dto.UpdatePartyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var mdl model.PartyModel
	res := ctrl.DB.Model(&mdl).
		Clauses(clause.Returning{}).
		Where("party_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update party")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Party not found")
	}
	return helper.JsonUpdated(c, "Party updated", dto.FromPartyModel(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /a/parties/:id (soft delete)
func (ctrl *PartyController) DeleteParty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid party ID")
	}

	res := ctrl.DB.Delete(&model.PartyModel{}, "party_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete party")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Party not found")
	}
	return helper.JsonDeleted(c, "Party deleted", fiber.Map{"party_id": id})
}

/* ===================== ATTENDANCE ===================== */
// POST /u/parties/:id/attendances
// Upsert per (party, date, member): re-submitting a meeting overwrites.
func (ctrl *PartyController) SubmitAttendance(c *fiber.Ctx) error {
	partyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid party ID")
	}

	var req dto.SubmitPartyAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var party model.PartyModel
	if err := ctrl.DB.First(&party, "party_id = ?", partyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Party not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	date, _ := time.Parse("2006-01-02", req.PartyAttendanceDate)

	rows := make([]model.PartyAttendanceModel, 0, len(req.Items))
	for _, item := range req.Items {
		rows = append(rows, model.PartyAttendanceModel{
			PartyAttendancePartyID:  partyID,
			PartyAttendanceDate:     date,
			PartyAttendanceMemberID: item.MemberID,
			PartyAttendanceStatus:   item.Status,
			PartyAttendanceNote:     item.Note,
		})
	}

	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "party_attendance_party_id"},
			{Name: "party_attendance_date"},
			{Name: "party_attendance_member_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"party_attendance_status", "party_attendance_note",
		}),
	}).Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save party attendance")
	}

	resps := make([]dto.PartyAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromPartyAttendanceModel(r))
	}
	return helper.JsonCreated(c, "Party attendance saved", resps)
}

// GET /u/parties/:id/attendances?date=
func (ctrl *PartyController) ListAttendance(c *fiber.Ctx) error {
	partyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid party ID")
	}

	q := ctrl.DB.Model(&model.PartyAttendanceModel{}).
		Where("party_attendance_party_id = ?", partyID)

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date, want YYYY-MM-DD")
		}
		q = q.Where("party_attendance_date = ?", date)
	}

	var rows []model.PartyAttendanceModel
	if err := q.Order("party_attendance_date DESC, party_attendance_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list party attendance")
	}

	resps := make([]dto.PartyAttendanceResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromPartyAttendanceModel(r))
	}
	return helper.JsonOK(c, "", resps)
}
