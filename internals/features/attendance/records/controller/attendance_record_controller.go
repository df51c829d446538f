package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"somangchurch_backend/internals/features/attendance/records/dto"
	"somangchurch_backend/internals/features/attendance/records/model"
	rosterservice "somangchurch_backend/internals/features/attendance/roster/service"
	helper "somangchurch_backend/internals/helpers"
	helperauth "somangchurch_backend/internals/helpers/auth"
)

type AttendanceRecordController struct {
	DB *gorm.DB
}

func NewAttendanceRecordController(db *gorm.DB) *AttendanceRecordController {
	return &AttendanceRecordController{DB: db}
}

/* ===================== CREATE SHEET ===================== */
// POST /a/attendance/sheets
func (ctrl *AttendanceRecordController) CreateSheet(c *fiber.Ctx) error {
	var req dto.CreateAttendanceSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.AttendanceDate)

	// pre-check: one sheet per (ministry, date, round)
	var existing int64
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_ministry_id = ? AND attendance_record_date = ? AND attendance_record_round = ?",
			req.MinistryID, date, req.Round).
		Count(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if existing > 0 {
		return fiber.NewError(fiber.StatusConflict, "A sheet for this round already exists")
	}

	models := req.ToModels()
	if err := ctrl.DB.Create(&models).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create attendance sheet")
	}

	resps := make([]dto.AttendanceRecordResponse, 0, len(models))
	for _, mdl := range models {
		resps = append(resps, dto.FromAttendanceRecordModel(mdl))
	}
	return helper.JsonCreated(c, "Attendance sheet created", resps)
}

/* ===================== UPDATE ROW (partial) ===================== */
// PATCH /a/attendance/records/:id
// A confirmed row is immutable outside the point-ledger flow.
func (ctrl *AttendanceRecordController) UpdateRecord(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.UpdateAttendanceRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.AttendanceRecordModel
	if err := ctrl.DB.First(&row, "attendance_record_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.AttendanceRecordIsConfirmed {
		return fiber.NewError(fiber.StatusConflict, "Attendance record is already confirmed")
	}

	updates := map[string]any{}
	if req.AttendanceRecordStatus != nil {
		updates["attendance_record_status"] = *req.AttendanceRecordStatus
	}
	if req.AttendanceRecordMemo != nil {
		updates["attendance_record_memo"] = *req.AttendanceRecordMemo
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromAttendanceRecordModel(row))
	}

	var updated model.AttendanceRecordModel
	tx := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_id = ? AND attendance_record_is_confirmed = ?", id, false).
		Clauses(clause.Returning{}).
		Updates(updates).
		Scan(&updated)
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update attendance record")
	}
	if tx.RowsAffected == 0 {
		// confirmed between the pre-check and the write
		return fiber.NewError(fiber.StatusConflict, "Attendance record is already confirmed")
	}

	return helper.JsonUpdated(c, "Attendance record updated", dto.FromAttendanceRecordModel(updated))
}

/* ===================== DELETE SHEET ===================== */
// DELETE /a/attendance/sheets?date=&ministry_id=&round=
// Refused when any row of the sheet has been confirmed.
func (ctrl *AttendanceRecordController) DeleteSheet(c *fiber.Ctx) error {
	var req dto.SheetRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.AttendanceDate)

	var confirmed int64
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_record_ministry_id = ? AND attendance_record_date = ? AND attendance_record_round = ? AND attendance_record_is_confirmed = ?",
			req.MinistryID, date, req.Round, true).
		Count(&confirmed).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if confirmed > 0 {
		return fiber.NewError(fiber.StatusConflict, "Sheet has confirmed records and cannot be deleted")
	}

	tx := ctrl.DB.
		Where("attendance_record_ministry_id = ? AND attendance_record_date = ? AND attendance_record_round = ?",
			req.MinistryID, date, req.Round).
		Delete(&model.AttendanceRecordModel{})
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete sheet")
	}
	if tx.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Sheet not found")
	}

	return helper.JsonDeleted(c, "Sheet deleted", fiber.Map{"deleted": tx.RowsAffected})
}

/* ===================== GROUPED LIST ===================== */
// GET /u/attendance/sheets?date=&ministry_id=&round=
// Returns the nested ministry → round → group roster for the date.
func (ctrl *AttendanceRecordController) ListGrouped(c *fiber.Ctx) error {
	var req dto.FilterAttendanceRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.AttendanceDate)

	// no explicit filter → fall back to the caller's ministry scope
	if req.MinistryID == nil {
		if scoped, err := helperauth.GetActiveMinistryID(c); err == nil {
			req.MinistryID = &scoped
		}
	}

	type flatRow struct {
		RecordID     uuid.UUID `gorm:"column:attendance_record_id"`
		MinistryID   uuid.UUID `gorm:"column:attendance_record_ministry_id"`
		MinistryName string    `gorm:"column:ministry_name"`
		IsChoir      bool      `gorm:"column:ministry_is_choir"`
		Round        string    `gorm:"column:attendance_record_round"`
		MemberID     uuid.UUID `gorm:"column:attendance_record_member_id"`
		MemberName   string    `gorm:"column:member_name"`
		MemberPhone  *string   `gorm:"column:member_phone"`
		Part         *string   `gorm:"column:membership_part"`
		Grade        *int      `gorm:"column:membership_grade"`
		Class        *int      `gorm:"column:membership_class"`
		Status       *string   `gorm:"column:attendance_record_status"`
		IsConfirmed  bool      `gorm:"column:attendance_record_is_confirmed"`
	}

	q := ctrl.DB.Table("attendance_records").
		Select(`attendance_records.attendance_record_id,
		        attendance_records.attendance_record_ministry_id,
		        ministries.ministry_name,
		        ministries.ministry_is_choir,
		        attendance_records.attendance_record_round,
		        attendance_records.attendance_record_member_id,
		        members.member_name,
		        members.member_phone,
		        memberships.membership_part,
		        memberships.membership_grade,
		        memberships.membership_class,
		        attendance_records.attendance_record_status,
		        attendance_records.attendance_record_is_confirmed`).
		Joins("JOIN ministries ON ministries.ministry_id = attendance_records.attendance_record_ministry_id").
		Joins("JOIN members ON members.member_id = attendance_records.attendance_record_member_id").
		Joins(`LEFT JOIN memberships
		         ON memberships.membership_member_id = attendance_records.attendance_record_member_id
		        AND memberships.membership_ministry_id = attendance_records.attendance_record_ministry_id
		        AND memberships.membership_year = ?
		        AND memberships.membership_deleted_at IS NULL`, date.Year()).
		Where("attendance_records.attendance_record_date = ?", date)
	if req.MinistryID != nil {
		q = q.Where("attendance_records.attendance_record_ministry_id = ?", *req.MinistryID)
	}
	if req.Round != nil {
		q = q.Where("attendance_records.attendance_record_round = ?", *req.Round)
	}

	var rows []flatRow
	if err := q.Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	records := make([]rosterservice.RosterRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, rosterservice.RosterRecord{
			RecordID:     r.RecordID,
			MinistryID:   r.MinistryID,
			MinistryName: r.MinistryName,
			IsChoir:      r.IsChoir,
			Round:        r.Round,
			MemberID:     r.MemberID,
			MemberName:   r.MemberName,
			MemberPhone:  r.MemberPhone,
			Part:         r.Part,
			Grade:        r.Grade,
			Class:        r.Class,
			Status:       r.Status,
			IsConfirmed:  r.IsConfirmed,
		})
	}

	return helper.JsonOK(c, "", rosterservice.BuildRoster(records))
}
