package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attmodel "somangchurch_backend/internals/features/attendance/records/model"
	"somangchurch_backend/internals/features/points/ledger/model"
	policyservice "somangchurch_backend/internals/features/points/policy/service"
)

// errAlreadyConfirmed marks a record that lost the race between the pending
// select and the conditional confirm write. Counted as skipped, not failed.
var errAlreadyConfirmed = errors.New("attendance record already confirmed")

type ConfirmFailure struct {
	RecordID uuid.UUID `json:"record_id"`
	MemberID uuid.UUID `json:"member_id"`
	Reason   string    `json:"reason"`
}

type ConfirmSummary struct {
	Confirmed int              `json:"confirmed"`
	Skipped   int              `json:"skipped"`
	Failed    int              `json:"failed"`
	Failures  []ConfirmFailure `json:"failures,omitempty"`
}

type ConfirmService struct {
	DB     *gorm.DB
	Policy *policyservice.Service
}

func NewConfirmService(db *gorm.DB) *ConfirmService {
	return &ConfirmService{DB: db, Policy: policyservice.New(db)}
}

// ConfirmSheet credits every marked, unconfirmed record of one
// (ministry, date, round) sheet. Each record runs in its own transaction:
// balance read, ledger append, balance upsert, conditional confirm flag. A
// failing record rolls back alone and the batch continues — the summary
// reports per-record outcomes instead of failing the whole pass. Re-running
// over the same sheet is a no-op for already-confirmed records.
func (s *ConfirmService) ConfirmSheet(ministryID uuid.UUID, date time.Time, round string) (ConfirmSummary, error) {
	policy, err := s.Policy.Resolve(ministryID, nil)
	if err != nil {
		return ConfirmSummary{}, err
	}

	var pending []attmodel.AttendanceRecordModel
	if err := s.DB.
		Where("attendance_record_ministry_id = ? AND attendance_record_date = ? AND attendance_record_round = ?",
			ministryID, date, round).
		Where("attendance_record_status IN ?", []string{
			attmodel.StatusPresent, attmodel.StatusLate, attmodel.StatusAbsent,
		}).
		Where("attendance_record_is_confirmed = ?", false).
		Order("attendance_record_created_at ASC, attendance_record_member_id ASC").
		Find(&pending).Error; err != nil {
		return ConfirmSummary{}, err
	}

	summary := ConfirmSummary{}
	for _, rec := range pending {
		err := s.confirmOne(rec, policy)
		switch {
		case err == nil:
			summary.Confirmed++
		case errors.Is(err, errAlreadyConfirmed):
			summary.Skipped++
		default:
			summary.Failed++
			summary.Failures = append(summary.Failures, ConfirmFailure{
				RecordID: rec.AttendanceRecordID,
				MemberID: rec.AttendanceRecordMemberID,
				Reason:   err.Error(),
			})
		}
	}
	return summary, nil
}

func (s *ConfirmService) confirmOne(rec attmodel.AttendanceRecordModel, policy policyservice.PointPolicy) error {
	if rec.AttendanceRecordStatus == nil {
		return errors.New("record has no status")
	}
	status := *rec.AttendanceRecordStatus

	delta, ok := policy.PointsFor(status)
	if !ok {
		return errors.New("no point value for status " + status)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// 1) current balance (0 when no row yet)
		current := 0
		var bal model.MemberPointBalanceModel
		err := tx.Take(&bal, "member_point_balance_member_id = ?", rec.AttendanceRecordMemberID).Error
		if err == nil {
			current = bal.MemberPointBalanceBalance
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		newBalance := current + delta

		// 2) append the ledger entry; the unique source index rejects a
		// second credit for the same attendance record
		entry := model.PointLedgerEntryModel{
			PointLedgerEntryMemberID:     rec.AttendanceRecordMemberID,
			PointLedgerEntryDelta:        delta,
			PointLedgerEntryBalanceAfter: newBalance,
			PointLedgerEntryReason:       status,
			PointLedgerEntrySourceType:   model.SourceTypeAttendance,
			PointLedgerEntrySourceID:     rec.AttendanceRecordID,
			PointLedgerEntryMemo:         rec.AttendanceRecordDate.Format("2006-01-02") + " " + rec.AttendanceRecordRound + "부",
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// 3) upsert the cached balance
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "member_point_balance_member_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"member_point_balance_balance":    newBalance,
				"member_point_balance_updated_at": time.Now(),
			}),
		}).Create(&model.MemberPointBalanceModel{
			MemberPointBalanceMemberID: rec.AttendanceRecordMemberID,
			MemberPointBalanceBalance:  newBalance,
		}).Error; err != nil {
			return err
		}

		// 4) conditional confirm: zero rows means another run got here first
		res := tx.Model(&attmodel.AttendanceRecordModel{}).
			Where("attendance_record_id = ? AND attendance_record_is_confirmed = ?", rec.AttendanceRecordID, false).
			Update("attendance_record_is_confirmed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyConfirmed
		}
		return nil
	})
}
