package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	attmodel "somangchurch_backend/internals/features/attendance/records/model"
	"somangchurch_backend/internals/features/points/ledger/model"
	policymodel "somangchurch_backend/internals/features/points/policy/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	// per-test in-memory database to avoid cross-test interference
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&attmodel.AttendanceRecordModel{},
		&model.PointLedgerEntryModel{},
		&model.MemberPointBalanceModel{},
		&policymodel.PointPolicyModel{},
	))
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, ministryID, memberID uuid.UUID, date time.Time, round, status string, createdAt time.Time) attmodel.AttendanceRecordModel {
	t.Helper()
	rec := attmodel.AttendanceRecordModel{
		AttendanceRecordDate:       date,
		AttendanceRecordMinistryID: ministryID,
		AttendanceRecordRound:      round,
		AttendanceRecordMemberID:   memberID,
		AttendanceRecordStatus:     &status,
		AttendanceRecordCreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(&rec).Error)
	return rec
}

func memberBalance(t *testing.T, db *gorm.DB, memberID uuid.UUID) int {
	t.Helper()
	var bal model.MemberPointBalanceModel
	err := db.Take(&bal, "member_point_balance_member_id = ?", memberID).Error
	if err == gorm.ErrRecordNotFound {
		return 0
	}
	require.NoError(t, err)
	return bal.MemberPointBalanceBalance
}

func TestConfirmSheetWorkedExample(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	memberID := uuid.New()
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	base := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	r1 := seedRecord(t, db, ministryID, memberID, date, "1", attmodel.StatusPresent, base)
	r2 := seedRecord(t, db, ministryID, memberID, date, "2", attmodel.StatusLate, base.Add(time.Second))
	r3 := seedRecord(t, db, ministryID, memberID, date, "3", attmodel.StatusAbsent, base.Add(2*time.Second))

	for _, round := range []string{"1", "2", "3"} {
		sum, err := svc.ConfirmSheet(ministryID, date, round)
		require.NoError(t, err)
		require.Equal(t, 1, sum.Confirmed)
		require.Zero(t, sum.Failed)
	}

	var entries []model.PointLedgerEntryModel
	require.NoError(t, db.Order("point_ledger_entry_balance_after ASC").Find(&entries).Error)
	require.Len(t, entries, 3)

	require.Equal(t, 20, entries[0].PointLedgerEntryDelta)
	require.Equal(t, 20, entries[0].PointLedgerEntryBalanceAfter)
	require.Equal(t, r1.AttendanceRecordID, entries[0].PointLedgerEntrySourceID)
	require.Equal(t, attmodel.StatusPresent, entries[0].PointLedgerEntryReason)

	require.Equal(t, 10, entries[1].PointLedgerEntryDelta)
	require.Equal(t, 30, entries[1].PointLedgerEntryBalanceAfter)
	require.Equal(t, r2.AttendanceRecordID, entries[1].PointLedgerEntrySourceID)

	require.Equal(t, 5, entries[2].PointLedgerEntryDelta)
	require.Equal(t, 35, entries[2].PointLedgerEntryBalanceAfter)
	require.Equal(t, r3.AttendanceRecordID, entries[2].PointLedgerEntrySourceID)

	require.Equal(t, 35, memberBalance(t, db, memberID))

	// every record is flagged confirmed
	var unconfirmed int64
	require.NoError(t, db.Model(&attmodel.AttendanceRecordModel{}).
		Where("attendance_record_is_confirmed = ?", false).
		Count(&unconfirmed).Error)
	require.Zero(t, unconfirmed)
}

func TestConfirmSheetIdempotent(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	memberID := uuid.New()
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	seedRecord(t, db, ministryID, memberID, date, "1", attmodel.StatusPresent, time.Now())

	first, err := svc.ConfirmSheet(ministryID, date, "1")
	require.NoError(t, err)
	require.Equal(t, 1, first.Confirmed)

	second, err := svc.ConfirmSheet(ministryID, date, "1")
	require.NoError(t, err)
	require.Zero(t, second.Confirmed)
	require.Zero(t, second.Skipped)
	require.Zero(t, second.Failed)

	var entries int64
	require.NoError(t, db.Model(&model.PointLedgerEntryModel{}).Count(&entries).Error)
	require.EqualValues(t, 1, entries)
	require.Equal(t, 20, memberBalance(t, db, memberID))
}

func TestConfirmSheetPartialFailureIsolation(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	base := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	members := make([]uuid.UUID, 5)
	records := make([]attmodel.AttendanceRecordModel, 5)
	for i := range records {
		members[i] = uuid.New()
		records[i] = seedRecord(t, db, ministryID, members[i], date, "1", attmodel.StatusPresent, base.Add(time.Duration(i)*time.Second))
	}

	// poison record 3: a ledger row already holds its source id, so the
	// unique source index rejects the append
	require.NoError(t, db.Create(&model.PointLedgerEntryModel{
		PointLedgerEntryMemberID:   uuid.New(),
		PointLedgerEntryDelta:      1,
		PointLedgerEntryReason:     "seed",
		PointLedgerEntrySourceType: model.SourceTypeAttendance,
		PointLedgerEntrySourceID:   records[2].AttendanceRecordID,
	}).Error)

	sum, err := svc.ConfirmSheet(ministryID, date, "1")
	require.NoError(t, err)
	require.Equal(t, 4, sum.Confirmed)
	require.Equal(t, 1, sum.Failed)
	require.Len(t, sum.Failures, 1)
	require.Equal(t, records[2].AttendanceRecordID, sum.Failures[0].RecordID)

	// records 1,2,4,5 fully credited; record 3 untouched
	for i, memberID := range members {
		if i == 2 {
			require.Zero(t, memberBalance(t, db, memberID))
			var rec attmodel.AttendanceRecordModel
			require.NoError(t, db.Take(&rec, "attendance_record_id = ?", records[2].AttendanceRecordID).Error)
			require.False(t, rec.AttendanceRecordIsConfirmed)
			continue
		}
		require.Equal(t, 20, memberBalance(t, db, memberID), "member %d", i)
	}
}

func TestBalanceMatchesLedgerSum(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	memberID := uuid.New()
	base := time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)

	statuses := []string{
		attmodel.StatusPresent, attmodel.StatusLate, attmodel.StatusAbsent,
		attmodel.StatusPresent, attmodel.StatusPresent,
	}
	for i, status := range statuses {
		date := time.Date(2024, 6, 2+i, 0, 0, 0, 0, time.UTC)
		seedRecord(t, db, ministryID, memberID, date, "1", status, base.Add(time.Duration(i)*time.Second))
		_, err := svc.ConfirmSheet(ministryID, date, "1")
		require.NoError(t, err)
	}

	var sum int64
	require.NoError(t, db.Model(&model.PointLedgerEntryModel{}).
		Where("point_ledger_entry_member_id = ?", memberID).
		Select("COALESCE(SUM(point_ledger_entry_delta), 0)").
		Scan(&sum).Error)

	require.EqualValues(t, memberBalance(t, db, memberID), sum)
	require.EqualValues(t, 20+10+5+20+20, sum)
}

func TestConfirmSheetUsesMinistryPolicy(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	memberID := uuid.New()
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&policymodel.PointPolicyModel{
		PointPolicyMinistryID: &ministryID,
		PointPolicyPresent:    50,
		PointPolicyLate:       25,
		PointPolicyAbsent:     0,
	}).Error)

	seedRecord(t, db, ministryID, memberID, date, "1", attmodel.StatusPresent, time.Now())

	sum, err := svc.ConfirmSheet(ministryID, date, "1")
	require.NoError(t, err)
	require.Equal(t, 1, sum.Confirmed)
	require.Equal(t, 50, memberBalance(t, db, memberID))
}

func TestConfirmSheetIgnoresUnmarkedRows(t *testing.T) {
	db := setupDB(t)
	svc := NewConfirmService(db)

	ministryID := uuid.New()
	date := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	// row exists but nothing was marked
	rec := attmodel.AttendanceRecordModel{
		AttendanceRecordDate:       date,
		AttendanceRecordMinistryID: ministryID,
		AttendanceRecordRound:      "1",
		AttendanceRecordMemberID:   uuid.New(),
	}
	require.NoError(t, db.Create(&rec).Error)

	sum, err := svc.ConfirmSheet(ministryID, date, "1")
	require.NoError(t, err)
	require.Zero(t, sum.Confirmed)
	require.Zero(t, sum.Failed)

	var entries int64
	require.NoError(t, db.Model(&model.PointLedgerEntryModel{}).Count(&entries).Error)
	require.Zero(t, entries)
}
