package service

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"

	calmodel "somangchurch_backend/internals/features/calendar/entries/model"
	membermodel "somangchurch_backend/internals/features/members/members/model"
)

// MonthDay is a year-independent calendar position. Birthdays recur on their
// (month, day) pair regardless of the year they were recorded in.
type MonthDay struct {
	Month time.Month
	Day   int
}

func MonthDayOf(t time.Time) MonthDay {
	return MonthDay{Month: t.Month(), Day: t.Day()}
}

// BirthdayIndex maps a (month, day) pair to the members born on it.
// Lookup is O(1) per date; members without a recorded birth date are not
// indexed.
type BirthdayIndex struct {
	byDay map[MonthDay][]membermodel.MemberModel
}

func NewBirthdayIndex(members []membermodel.MemberModel) *BirthdayIndex {
	idx := &BirthdayIndex{byDay: make(map[MonthDay][]membermodel.MemberModel)}
	for _, mb := range members {
		if mb.MemberBirthDate == nil {
			continue
		}
		key := MonthDayOf(*mb.MemberBirthDate)
		idx.byDay[key] = append(idx.byDay[key], mb)
	}
	for key := range idx.byDay {
		bucket := idx.byDay[key]
		sort.SliceStable(bucket, func(i, j int) bool {
			if bucket[i].MemberName != bucket[j].MemberName {
				return bucket[i].MemberName < bucket[j].MemberName
			}
			return bytes.Compare(bucket[i].MemberID[:], bucket[j].MemberID[:]) < 0
		})
	}
	return idx
}

// Lookup returns the members whose birthday falls on the given date's
// (month, day), in any year. The returned slice is shared; callers must not
// mutate it.
func (idx *BirthdayIndex) Lookup(date time.Time) []membermodel.MemberModel {
	return idx.byDay[MonthDayOf(date)]
}

// Upcoming walks the rolling window [from, from+days], both ends inclusive,
// and returns each day's birthdays in window order.
func (idx *BirthdayIndex) Upcoming(from time.Time, days int) []BirthdayHit {
	from = truncateDate(from)
	var hits []BirthdayHit
	for i := 0; i <= days; i++ {
		day := from.AddDate(0, 0, i)
		for _, mb := range idx.Lookup(day) {
			hits = append(hits, BirthdayHit{Date: day, Member: mb})
		}
	}
	return hits
}

type BirthdayHit struct {
	Date   time.Time               `json:"date"`
	Member membermodel.MemberModel `json:"member"`
}

// FilterWindow keeps the entries whose sing date falls inside
// [from, from+days], both ends inclusive, after truncating times to dates.
// Result order is sing date ascending, then ministry id ascending with the
// church-wide (nil ministry) entries first for the same date.
func FilterWindow(entries []calmodel.CalendarEntryModel, from time.Time, days int) []calmodel.CalendarEntryModel {
	start := truncateDate(from)
	end := start.AddDate(0, 0, days)

	out := make([]calmodel.CalendarEntryModel, 0, len(entries))
	for _, e := range entries {
		d := truncateDate(e.CalendarEntrySingDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := truncateDate(out[i].CalendarEntrySingDate), truncateDate(out[j].CalendarEntrySingDate)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return bytes.Compare(ministryKey(out[i].CalendarEntryMinistryID), ministryKey(out[j].CalendarEntryMinistryID)) < 0
	})
	return out
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ministryKey(id *uuid.UUID) []byte {
	if id == nil {
		var zero uuid.UUID
		return zero[:]
	}
	return id[:]
}
