package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"somangchurch_backend/internals/features/points/ledger/dto"
	"somangchurch_backend/internals/features/points/ledger/model"
	"somangchurch_backend/internals/features/points/ledger/service"
	helper "somangchurch_backend/internals/helpers"
)

type PointLedgerController struct {
	DB      *gorm.DB
	Confirm *service.ConfirmService
}

func NewPointLedgerController(db *gorm.DB) *PointLedgerController {
	return &PointLedgerController{DB: db, Confirm: service.NewConfirmService(db)}
}

/* ===================== CONFIRM ===================== */
// POST /a/points/confirm
// Runs the confirmation ledger over one sheet. Partial failures do not abort
// the batch; the summary reports per-record outcomes.
func (ctrl *PointLedgerController) ConfirmSheet(c *fiber.Ctx) error {
	var req dto.ConfirmSheetRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.AttendanceDate)

	summary, err := ctrl.Confirm.ConfirmSheet(req.MinistryID, date, req.Round)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Confirmation failed: "+err.Error())
	}

	return helper.JsonOK(c, "Confirmation finished", summary)
}

/* ===================== LEDGER LIST ===================== */
// GET /a/points/ledger?member_id=&page=&per_page=
func (ctrl *PointLedgerController) ListLedger(c *fiber.Ctx) error {
	var req dto.FilterLedgerRequest
	if err := c.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.PointLedgerEntryModel{}).
		Where("point_ledger_entry_member_id = ?", req.MemberID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PointLedgerEntryModel
	if err := q.Order("point_ledger_entry_occurred_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list ledger entries")
	}

	resps := make([]dto.PointLedgerEntryResponse, 0, len(rows))
	for _, r := range rows {
		resps = append(resps, dto.FromPointLedgerEntryModel(r))
	}
	return helper.JsonList(c, "", resps, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== BALANCES ===================== */
// GET /a/points/balances
func (ctrl *PointLedgerController) ListBalances(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	var total int64
	if err := ctrl.DB.Model(&model.MemberPointBalanceModel{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []dto.MemberPointBalanceResponse
	if err := ctrl.DB.Table("member_point_balances").
		Select(`member_point_balances.member_point_balance_member_id AS member_id,
		        members.member_name,
		        member_point_balances.member_point_balance_balance AS balance,
		        member_point_balances.member_point_balance_updated_at AS updated_at`).
		Joins("JOIN members ON members.member_id = member_point_balances.member_point_balance_member_id").
		Order("balance DESC, members.member_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list balances")
	}

	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
