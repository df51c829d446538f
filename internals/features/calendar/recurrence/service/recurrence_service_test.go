package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calmodel "somangchurch_backend/internals/features/calendar/entries/model"
	membermodel "somangchurch_backend/internals/features/members/members/model"
)

func date(y int, mo time.Month, d int) time.Time {
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC)
}

func member(name string, born time.Time) membermodel.MemberModel {
	b := born
	return membermodel.MemberModel{
		MemberID:        uuid.New(),
		MemberName:      name,
		MemberBirthDate: &b,
	}
}

func entry(singDate time.Time, ministryID *uuid.UUID) calmodel.CalendarEntryModel {
	link := "https://example.com/sheet"
	return calmodel.CalendarEntryModel{
		CalendarEntryID:         uuid.New(),
		CalendarEntrySingDate:   singDate,
		CalendarEntryTitle:      "주일 찬양",
		CalendarEntryKind:       calmodel.KindSingleLink,
		CalendarEntryLink:       &link,
		CalendarEntryMinistryID: ministryID,
	}
}

func TestBirthdayLookupIgnoresYear(t *testing.T) {
	idx := NewBirthdayIndex([]membermodel.MemberModel{
		member("김하진", date(1980, time.March, 15)),
	})

	assert.Len(t, idx.Lookup(date(2024, time.March, 15)), 1)
	assert.Len(t, idx.Lookup(date(2030, time.March, 15)), 1)
	assert.Empty(t, idx.Lookup(date(2024, time.March, 16)))
}

func TestBirthdayLookupSkipsMembersWithoutBirthDate(t *testing.T) {
	idx := NewBirthdayIndex([]membermodel.MemberModel{
		{MemberID: uuid.New(), MemberName: "이수민"},
		member("박주원", date(1995, time.July, 2)),
	})

	assert.Empty(t, idx.Lookup(date(2024, time.January, 1)))
	hits := idx.Lookup(date(2024, time.July, 2))
	require.Len(t, hits, 1)
	assert.Equal(t, "박주원", hits[0].MemberName)
}

func TestBirthdayUpcomingWalksInclusiveWindow(t *testing.T) {
	idx := NewBirthdayIndex([]membermodel.MemberModel{
		member("강민", date(1990, time.June, 1)),
		member("나래", date(1992, time.June, 8)),
		member("하진", date(1988, time.June, 9)),
	})

	hits := idx.Upcoming(date(2024, time.June, 1), 7)
	require.Len(t, hits, 2)
	assert.Equal(t, "강민", hits[0].Member.MemberName)
	assert.Equal(t, date(2024, time.June, 1), hits[0].Date)
	assert.Equal(t, "나래", hits[1].Member.MemberName)
	assert.Equal(t, date(2024, time.June, 8), hits[1].Date)
}

func TestFilterWindowInclusiveBounds(t *testing.T) {
	today := date(2024, time.June, 1)
	inLow := entry(today, nil)
	inHigh := entry(date(2024, time.June, 8), nil)
	outPast := entry(date(2024, time.May, 31), nil)
	outFuture := entry(date(2024, time.June, 9), nil)

	got := FilterWindow([]calmodel.CalendarEntryModel{outFuture, inHigh, outPast, inLow}, today, 7)

	require.Len(t, got, 2)
	assert.Equal(t, inLow.CalendarEntryID, got[0].CalendarEntryID)
	assert.Equal(t, inHigh.CalendarEntryID, got[1].CalendarEntryID)
}

func TestFilterWindowTruncatesTimeOfDay(t *testing.T) {
	// An entry stored with a late-evening timestamp on the window's last day
	// still counts as that day.
	from := time.Date(2024, time.June, 1, 23, 30, 0, 0, time.UTC)
	last := time.Date(2024, time.June, 8, 22, 0, 0, 0, time.UTC)

	got := FilterWindow([]calmodel.CalendarEntryModel{entry(last, nil)}, from, 7)
	assert.Len(t, got, 1)
}

func TestFilterWindowOrdersByDateThenMinistry(t *testing.T) {
	idA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	day := date(2024, time.June, 2)

	eB := entry(day, &idB)
	eA := entry(day, &idA)
	eGlobal := entry(day, nil)
	eEarlier := entry(date(2024, time.June, 1), &idB)

	got := FilterWindow([]calmodel.CalendarEntryModel{eB, eGlobal, eA, eEarlier}, date(2024, time.June, 1), 7)

	require.Len(t, got, 4)
	assert.Equal(t, eEarlier.CalendarEntryID, got[0].CalendarEntryID)
	assert.Equal(t, eGlobal.CalendarEntryID, got[1].CalendarEntryID)
	assert.Equal(t, eA.CalendarEntryID, got[2].CalendarEntryID)
	assert.Equal(t, eB.CalendarEntryID, got[3].CalendarEntryID)
}

func TestFilterWindowZeroDaysIsSingleDay(t *testing.T) {
	today := date(2024, time.June, 1)
	got := FilterWindow([]calmodel.CalendarEntryModel{
		entry(today, nil),
		entry(date(2024, time.June, 2), nil),
	}, today, 0)

	require.Len(t, got, 1)
	assert.Equal(t, today, got[0].CalendarEntrySingDate)
}
