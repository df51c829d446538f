package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const SourceTypeAttendance = "attendance"

// PointLedgerEntryModel is append-only: never updated or deleted. The unique
// (source_type, source_id) index is the storage-level guard against crediting
// the same attendance record twice.
type PointLedgerEntryModel struct {
	PointLedgerEntryID uuid.UUID `gorm:"type:uuid;primaryKey;column:point_ledger_entry_id" json:"point_ledger_entry_id"`

	PointLedgerEntryMemberID uuid.UUID `gorm:"type:uuid;not null;index;column:point_ledger_entry_member_id" json:"point_ledger_entry_member_id"`

	PointLedgerEntryDelta        int    `gorm:"not null;column:point_ledger_entry_delta" json:"point_ledger_entry_delta"`
	PointLedgerEntryBalanceAfter int    `gorm:"not null;column:point_ledger_entry_balance_after" json:"point_ledger_entry_balance_after"`
	PointLedgerEntryReason       string `gorm:"not null;column:point_ledger_entry_reason" json:"point_ledger_entry_reason"`

	PointLedgerEntrySourceType string    `gorm:"not null;uniqueIndex:uq_point_ledger_source;column:point_ledger_entry_source_type" json:"point_ledger_entry_source_type"`
	PointLedgerEntrySourceID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_point_ledger_source;column:point_ledger_entry_source_id" json:"point_ledger_entry_source_id"`

	PointLedgerEntryMemo string `gorm:"column:point_ledger_entry_memo" json:"point_ledger_entry_memo,omitempty"`

	PointLedgerEntryOccurredAt time.Time `gorm:"column:point_ledger_entry_occurred_at;autoCreateTime" json:"point_ledger_entry_occurred_at"`
}

func (PointLedgerEntryModel) TableName() string { return "point_ledger_entries" }

func (m *PointLedgerEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.PointLedgerEntryID == uuid.Nil {
		m.PointLedgerEntryID = uuid.New()
	}
	return nil
}

// MemberPointBalanceModel is the cached projection of the ledger: one row per
// member, updated in the same transaction as every ledger append.
type MemberPointBalanceModel struct {
	MemberPointBalanceMemberID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_point_balance_member_id" json:"member_point_balance_member_id"`

	MemberPointBalanceBalance int `gorm:"not null;default:0;column:member_point_balance_balance" json:"member_point_balance_balance"`

	MemberPointBalanceUpdatedAt time.Time `gorm:"column:member_point_balance_updated_at;autoUpdateTime" json:"member_point_balance_updated_at"`
}

func (MemberPointBalanceModel) TableName() string { return "member_point_balances" }
