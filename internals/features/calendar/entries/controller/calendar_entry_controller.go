package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"somangchurch_backend/internals/features/calendar/entries/dto"
	"somangchurch_backend/internals/features/calendar/entries/model"
	recurrence "somangchurch_backend/internals/features/calendar/recurrence/service"
	helper "somangchurch_backend/internals/helpers"
)

type CalendarEntryController struct {
	DB *gorm.DB
}

func NewCalendarEntryController(db *gorm.DB) *CalendarEntryController {
	return &CalendarEntryController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /a/calendar/entries
func (ctrl *CalendarEntryController) CreateEntry(c *fiber.Ctx) error {
	var req dto.CreateCalendarEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckKind(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	mdl := req.ToModel()
	if err := ctrl.DB.Create(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create calendar entry")
	}

	return helper.JsonCreated(c, "Calendar entry created", dto.FromCalendarEntryModel(mdl))
}

/* ===================== UPCOMING WINDOW ===================== */
// GET /u/calendar/upcoming?from=&days=&ministry_id=
// Rolling window [from, from+days], both ends inclusive. from defaults to
// today (Asia/Seoul), days to 14.
func (ctrl *CalendarEntryController) ListUpcoming(c *fiber.Ctx) error {
	var req dto.FilterCalendarRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	loc, _ := time.LoadLocation("Asia/Seoul")
	from := time.Now().In(loc)
	if req.From != nil {
		from, _ = time.Parse("2006-01-02", *req.From)
	}
	days := 14
	if req.Days != nil {
		days = *req.Days
	}

	q := ctrl.DB.Model(&model.CalendarEntryModel{})
	if req.MinistryID != nil {
		q = q.Where("calendar_entry_ministry_id = ? OR calendar_entry_ministry_id IS NULL", *req.MinistryID)
	}

	var rows []model.CalendarEntryModel
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list calendar entries")
	}

	windowed := recurrence.FilterWindow(rows, from, days)

	resps := make([]dto.CalendarEntryResponse, 0, len(windowed))
	for _, r := range windowed {
		resps = append(resps, dto.FromCalendarEntryModel(r))
	}
	return helper.JsonOK(c, "", resps)
}

/* ===================== LIST BY MONTH ===================== */
// GET /u/calendar/entries?month=2006-01
func (ctrl *CalendarEntryController) ListByMonth(c *fiber.Ctx) error {
	raw := c.Query("month")
	if raw == "" {
		raw = time.Now().Format("2006-01")
	}
	start, err := time.Parse("2006-01", raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid month, want YYYY-MM")
	}
	end := start.AddDate(0, 1, 0)

	var rows []model.CalendarEntryModel
	if err := ctrl.DB.
		Where("calendar_entry_sing_date >= ? AND calendar_entry_sing_date < ?", start, end).
		Order("calendar_entry_sing_date ASC, calendar_entry_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list calendar entries")
	}

	resps := make([]dto.CalendarEntryResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromCalendarEntryModel(r))
	}
	return helper.JsonOK(c, "", resps)
}

/* ===================== GET ===================== */
// GET /u/calendar/entries/:id
func (ctrl *CalendarEntryController) GetEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar entry ID")
	}

	var mdl model.CalendarEntryModel
	if err := ctrl.DB.First(&mdl, "calendar_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Calendar entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromCalendarEntryModel(mdl))
}

/* ===================== UPDATE ===================== */
// PUT /a/calendar/entries/:id
// Full replace. The payload is re-validated as a union, so an entry can
// change kind as long as the new payload is complete.
func (ctrl *CalendarEntryController) UpdateEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar entry ID")
	}

	var req dto.CreateCalendarEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckKind(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	var existing model.CalendarEntryModel
	if err := ctrl.DB.First(&existing, "calendar_entry_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Calendar entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	mdl := req.ToModel()
	mdl.CalendarEntryID = existing.CalendarEntryID
	mdl.CalendarEntryCreatedAt = existing.CalendarEntryCreatedAt

	// Save writes every column so payload fields of the previous kind are
	// cleared, not merged.
	if err := ctrl.DB.Save(&mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update calendar entry")
	}
	return helper.JsonUpdated(c, "Calendar entry updated", dto.FromCalendarEntryModel(mdl))
}

/* ===================== DELETE ===================== */
// DELETE /a/calendar/entries/:id
func (ctrl *CalendarEntryController) DeleteEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid calendar entry ID")
	}

	res := ctrl.DB.Delete(&model.CalendarEntryModel{}, "calendar_entry_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete calendar entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Calendar entry not found")
	}
	return helper.JsonDeleted(c, "Calendar entry deleted", fiber.Map{"calendar_entry_id": id})
}
