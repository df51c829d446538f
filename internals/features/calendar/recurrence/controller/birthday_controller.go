package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"somangchurch_backend/internals/features/calendar/recurrence/service"
	membermodel "somangchurch_backend/internals/features/members/members/model"
	helper "somangchurch_backend/internals/helpers"
)

type BirthdayController struct {
	DB *gorm.DB
}

func NewBirthdayController(db *gorm.DB) *BirthdayController {
	return &BirthdayController{DB: db}
}

type birthdayItem struct {
	Date       string `json:"date"`
	MemberID   string `json:"member_id"`
	MemberName string `json:"member_name"`
	BirthDate  string `json:"member_birth_date"`
}

// GET /u/calendar/birthdays?from=&days=
// Upcoming birthdays inside [from, from+days], both ends inclusive.
func (ctrl *BirthdayController) ListUpcoming(c *fiber.Ctx) error {
	loc, _ := time.LoadLocation("Asia/Seoul")
	from := time.Now().In(loc)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from, want YYYY-MM-DD")
		}
		from = parsed
	}
	days := c.QueryInt("days", 14)
	if days < 0 || days > 366 {
		return fiber.NewError(fiber.StatusBadRequest, "days must be between 0 and 366")
	}

	var members []membermodel.MemberModel
	if err := ctrl.DB.
		Where("member_birth_date IS NOT NULL").
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load members")
	}

	hits := service.NewBirthdayIndex(members).Upcoming(from, days)

	items := make([]birthdayItem, 0, len(hits))
	for _, h := range hits {
		items = append(items, birthdayItem{
			Date:       h.Date.Format("2006-01-02"),
			MemberID:   h.Member.MemberID.String(),
			MemberName: h.Member.MemberName,
			BirthDate:  h.Member.MemberBirthDate.Format("2006-01-02"),
		})
	}
	return helper.JsonOK(c, "", items)
}
