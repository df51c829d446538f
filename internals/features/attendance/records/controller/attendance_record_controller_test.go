package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"somangchurch_backend/internals/features/attendance/records/model"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AttendanceRecordModel{}))

	ctrl := NewAttendanceRecordController(db)
	app := fiber.New()
	app.Post("/attendance/sheets", ctrl.CreateSheet)
	app.Patch("/attendance/records/:id", ctrl.UpdateRecord)
	app.Delete("/attendance/sheets", ctrl.DeleteSheet)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateSheetRejectsDoubleBooking(t *testing.T) {
	app, db := setupApp(t)

	ministryID := uuid.New()
	payload := fiber.Map{
		"attendance_date": "2024-06-02",
		"ministry_id":     ministryID,
		"round":           "1",
		"member_ids":      []uuid.UUID{uuid.New(), uuid.New()},
	}

	resp := postJSON(t, app, "/attendance/sheets", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.AttendanceRecordModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	resp = postJSON(t, app, "/attendance/sheets", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// a different round on the same date is a new sheet
	payload["round"] = "2"
	resp = postJSON(t, app, "/attendance/sheets", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestUpdateRecordRefusesConfirmedRow(t *testing.T) {
	app, db := setupApp(t)

	row := model.AttendanceRecordModel{
		AttendanceRecordDate:        time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC),
		AttendanceRecordMinistryID:  uuid.New(),
		AttendanceRecordMemberID:    uuid.New(),
		AttendanceRecordRound:       model.RoundFirst,
		AttendanceRecordIsConfirmed: true,
	}
	require.NoError(t, db.Create(&row).Error)

	body := bytes.NewReader([]byte(`{"attendance_record_status":"present"}`))
	req := httptest.NewRequest(http.MethodPatch, "/attendance/records/"+row.AttendanceRecordID.String(), body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestDeleteSheetRefusedWhenConfirmed(t *testing.T) {
	app, db := setupApp(t)

	ministryID := uuid.New()
	date := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)

	unconfirmed := model.AttendanceRecordModel{
		AttendanceRecordDate:       date,
		AttendanceRecordMinistryID: ministryID,
		AttendanceRecordMemberID:   uuid.New(),
		AttendanceRecordRound:      model.RoundFirst,
	}
	confirmed := model.AttendanceRecordModel{
		AttendanceRecordDate:        date,
		AttendanceRecordMinistryID:  ministryID,
		AttendanceRecordMemberID:    uuid.New(),
		AttendanceRecordRound:       model.RoundFirst,
		AttendanceRecordIsConfirmed: true,
	}
	require.NoError(t, db.Create(&unconfirmed).Error)
	require.NoError(t, db.Create(&confirmed).Error)

	target := fmt.Sprintf("/attendance/sheets?date=2024-06-02&ministry_id=%s&round=1", ministryID)
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// nothing was deleted
	var count int64
	require.NoError(t, db.Model(&model.AttendanceRecordModel{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
