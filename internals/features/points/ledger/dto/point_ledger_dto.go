package dto

import (
	"time"

	"github.com/google/uuid"

	m "somangchurch_backend/internals/features/points/ledger/model"
)

// ConfirmSheetRequest identifies the sheet whose marked rows get credited.
type ConfirmSheetRequest struct {
	AttendanceDate string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	MinistryID     uuid.UUID `json:"ministry_id" validate:"required"`
	Round          string    `json:"round" validate:"required,oneof=1 2 3"`
}

type FilterLedgerRequest struct {
	MemberID uuid.UUID `query:"member_id" validate:"required"`
}

type PointLedgerEntryResponse struct {
	PointLedgerEntryID           uuid.UUID `json:"point_ledger_entry_id"`
	PointLedgerEntryMemberID     uuid.UUID `json:"point_ledger_entry_member_id"`
	PointLedgerEntryDelta        int       `json:"point_ledger_entry_delta"`
	PointLedgerEntryBalanceAfter int       `json:"point_ledger_entry_balance_after"`
	PointLedgerEntryReason       string    `json:"point_ledger_entry_reason"`
	PointLedgerEntrySourceType   string    `json:"point_ledger_entry_source_type"`
	PointLedgerEntrySourceID     uuid.UUID `json:"point_ledger_entry_source_id"`
	PointLedgerEntryMemo         string    `json:"point_ledger_entry_memo,omitempty"`
	PointLedgerEntryOccurredAt   time.Time `json:"point_ledger_entry_occurred_at"`
}

type MemberPointBalanceResponse struct {
	MemberID   uuid.UUID `json:"member_id"`
	MemberName string    `json:"member_name"`
	Balance    int       `json:"balance"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromPointLedgerEntryModel(mdl m.PointLedgerEntryModel) PointLedgerEntryResponse {
	return PointLedgerEntryResponse{
		PointLedgerEntryID:           mdl.PointLedgerEntryID,
		PointLedgerEntryMemberID:     mdl.PointLedgerEntryMemberID,
		PointLedgerEntryDelta:        mdl.PointLedgerEntryDelta,
		PointLedgerEntryBalanceAfter: mdl.PointLedgerEntryBalanceAfter,
		PointLedgerEntryReason:       mdl.PointLedgerEntryReason,
		PointLedgerEntrySourceType:   mdl.PointLedgerEntrySourceType,
		PointLedgerEntrySourceID:     mdl.PointLedgerEntrySourceID,
		PointLedgerEntryMemo:         mdl.PointLedgerEntryMemo,
		PointLedgerEntryOccurredAt:   mdl.PointLedgerEntryOccurredAt,
	}
}
