package database

import (
	"log"

	attendanceModel "somangchurch_backend/internals/features/attendance/records/model"
	calendarModel "somangchurch_backend/internals/features/calendar/entries/model"
	memberModel "somangchurch_backend/internals/features/members/members/model"
	membershipModel "somangchurch_backend/internals/features/members/memberships/model"
	ministryModel "somangchurch_backend/internals/features/members/ministries/model"
	partyModel "somangchurch_backend/internals/features/parties/model"
	ledgerModel "somangchurch_backend/internals/features/points/ledger/model"
	policyModel "somangchurch_backend/internals/features/points/policy/model"
	userModel "somangchurch_backend/internals/features/users/auth/model"
)

// AutoMigrate keeps dev and test databases in sync with the models. Production
// schemas are managed by SQL migrations; gate this behind RUN_MIGRATIONS.
func AutoMigrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&memberModel.MemberModel{},
		&ministryModel.MinistryModel{},
		&membershipModel.MembershipModel{},
		&attendanceModel.AttendanceRecordModel{},
		&policyModel.PointPolicyModel{},
		&ledgerModel.PointLedgerEntryModel{},
		&ledgerModel.MemberPointBalanceModel{},
		&calendarModel.CalendarEntryModel{},
		&partyModel.PartyModel{},
		&partyModel.PartyAttendanceModel{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}
	log.Println("[INFO] auto-migrate finished")
}
