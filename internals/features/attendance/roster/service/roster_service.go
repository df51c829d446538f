package service

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	recmodel "somangchurch_backend/internals/features/attendance/records/model"
)

// UnknownBucket is the sentinel group for rows with no grade/class/part.
// It always sorts after every numeric group.
const UnknownBucket = "미정"

// RosterRecord is one attendance row annotated with the denormalized member
// and membership fields the grouping needs.
type RosterRecord struct {
	RecordID     uuid.UUID `json:"record_id"`
	MinistryID   uuid.UUID `json:"ministry_id"`
	MinistryName string    `json:"ministry_name"`
	IsChoir      bool      `json:"is_choir"`
	Round        string    `json:"round"`
	MemberID     uuid.UUID `json:"member_id"`
	MemberName   string    `json:"member_name"`
	MemberPhone  *string   `json:"member_phone,omitempty"`
	Part         *string   `json:"part,omitempty"`
	Grade        *int      `json:"grade,omitempty"`
	Class        *int      `json:"class,omitempty"`
	Status       *string   `json:"status,omitempty"`
	IsConfirmed  bool      `json:"is_confirmed"`
}

// RosterGroup is one display group. Choir parts and class buckets carry
// Records directly; grade buckets carry class SubGroups instead.
type RosterGroup struct {
	Label        string         `json:"label"`
	PresentCount int            `json:"present_count"`
	TotalCount   int            `json:"total_count"`
	Records      []RosterRecord `json:"records,omitempty"`
	SubGroups    []RosterGroup  `json:"sub_groups,omitempty"`
}

type RoundRoster struct {
	Round        string        `json:"round"`
	PresentCount int           `json:"present_count"`
	TotalCount   int           `json:"total_count"`
	Groups       []RosterGroup `json:"groups"`
}

type MinistryRoster struct {
	MinistryID   uuid.UUID     `json:"ministry_id"`
	MinistryName string        `json:"ministry_name"`
	IsChoir      bool          `json:"is_choir"`
	PresentCount int           `json:"present_count"`
	TotalCount   int           `json:"total_count"`
	Rounds       []RoundRoster `json:"rounds"`
}

// BuildRoster groups a flat snapshot into ministry → round → group → records.
// Pure transform: counts are recomputed on every call, malformed grade/class
// values land in the unknown bucket instead of being dropped.
func BuildRoster(records []RosterRecord) []MinistryRoster {
	col := collate.New(language.Korean)

	type ministryKey struct {
		id   uuid.UUID
		name string
	}
	byMinistry := map[ministryKey]map[string][]RosterRecord{}
	choir := map[ministryKey]bool{}

	for _, r := range records {
		mk := ministryKey{id: r.MinistryID, name: r.MinistryName}
		if byMinistry[mk] == nil {
			byMinistry[mk] = map[string][]RosterRecord{}
		}
		byMinistry[mk][r.Round] = append(byMinistry[mk][r.Round], r)
		if r.IsChoir {
			choir[mk] = true
		}
	}

	ministries := make([]ministryKey, 0, len(byMinistry))
	for mk := range byMinistry {
		ministries = append(ministries, mk)
	}
	sort.Slice(ministries, func(i, j int) bool {
		if c := col.CompareString(ministries[i].name, ministries[j].name); c != 0 {
			return c < 0
		}
		return ministries[i].id.String() < ministries[j].id.String()
	})

	out := make([]MinistryRoster, 0, len(ministries))
	for _, mk := range ministries {
		rounds := byMinistry[mk]
		roundLabels := make([]string, 0, len(rounds))
		for label := range rounds {
			roundLabels = append(roundLabels, label)
		}
		sort.Slice(roundLabels, func(i, j int) bool {
			return lessNumericThenString(roundLabels[i], roundLabels[j])
		})

		mr := MinistryRoster{
			MinistryID:   mk.id,
			MinistryName: mk.name,
			IsChoir:      choir[mk],
		}
		for _, label := range roundLabels {
			var rr RoundRoster
			if choir[mk] {
				rr = buildChoirRound(label, rounds[label], col)
			} else {
				rr = buildGradeRound(label, rounds[label], col)
			}
			mr.PresentCount += rr.PresentCount
			mr.TotalCount += rr.TotalCount
			mr.Rounds = append(mr.Rounds, rr)
		}
		out = append(out, mr)
	}
	return out
}

// choir ministries: one flat group per vocal part
func buildChoirRound(round string, records []RosterRecord, col *collate.Collator) RoundRoster {
	byPart := map[string][]RosterRecord{}
	for _, r := range records {
		label := UnknownBucket
		if r.Part != nil && *r.Part != "" {
			label = *r.Part
		}
		byPart[label] = append(byPart[label], r)
	}

	labels := sortedLabels(byPart, col)
	rr := RoundRoster{Round: round}
	for _, label := range labels {
		g := newLeafGroup(label, byPart[label], col)
		rr.PresentCount += g.PresentCount
		rr.TotalCount += g.TotalCount
		rr.Groups = append(rr.Groups, g)
	}
	return rr
}

// other ministries: "<n>학년" buckets, each subdivided by class number
func buildGradeRound(round string, records []RosterRecord, col *collate.Collator) RoundRoster {
	type bucket struct {
		grade   *int
		byClass map[string][]RosterRecord
		classes map[string]*int
	}
	buckets := map[string]*bucket{}

	for _, r := range records {
		gradeLabel := UnknownBucket
		if r.Grade != nil {
			gradeLabel = fmt.Sprintf("%d학년", *r.Grade)
		}
		b := buckets[gradeLabel]
		if b == nil {
			b = &bucket{grade: r.Grade, byClass: map[string][]RosterRecord{}, classes: map[string]*int{}}
			buckets[gradeLabel] = b
		}
		classLabel := UnknownBucket
		if r.Class != nil {
			classLabel = fmt.Sprintf("%d반", *r.Class)
		}
		b.byClass[classLabel] = append(b.byClass[classLabel], r)
		b.classes[classLabel] = r.Class
	}

	gradeLabels := make([]string, 0, len(buckets))
	for label := range buckets {
		gradeLabels = append(gradeLabels, label)
	}
	sort.Slice(gradeLabels, func(i, j int) bool {
		return lessNullableInt(buckets[gradeLabels[i]].grade, buckets[gradeLabels[j]].grade, gradeLabels[i], gradeLabels[j])
	})

	rr := RoundRoster{Round: round}
	for _, gradeLabel := range gradeLabels {
		b := buckets[gradeLabel]

		classLabels := make([]string, 0, len(b.byClass))
		for label := range b.byClass {
			classLabels = append(classLabels, label)
		}
		sort.Slice(classLabels, func(i, j int) bool {
			return lessNullableInt(b.classes[classLabels[i]], b.classes[classLabels[j]], classLabels[i], classLabels[j])
		})

		gg := RosterGroup{Label: gradeLabel}
		for _, classLabel := range classLabels {
			cg := newLeafGroup(classLabel, b.byClass[classLabel], col)
			gg.PresentCount += cg.PresentCount
			gg.TotalCount += cg.TotalCount
			gg.SubGroups = append(gg.SubGroups, cg)
		}
		rr.PresentCount += gg.PresentCount
		rr.TotalCount += gg.TotalCount
		rr.Groups = append(rr.Groups, gg)
	}
	return rr
}

func newLeafGroup(label string, records []RosterRecord, col *collate.Collator) RosterGroup {
	sort.SliceStable(records, func(i, j int) bool {
		if c := col.CompareString(records[i].MemberName, records[j].MemberName); c != 0 {
			return c < 0
		}
		return records[i].MemberID.String() < records[j].MemberID.String()
	})

	g := RosterGroup{Label: label, Records: records, TotalCount: len(records)}
	for _, r := range records {
		if r.Status != nil && *r.Status == recmodel.StatusPresent {
			g.PresentCount++
		}
	}
	return g
}

func sortedLabels(m map[string][]RosterRecord, col *collate.Collator) []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		// unknown bucket always last
		if labels[i] == UnknownBucket {
			return false
		}
		if labels[j] == UnknownBucket {
			return true
		}
		return col.CompareString(labels[i], labels[j]) < 0
	})
	return labels
}

// numeric groups ascend; a nil value (unknown bucket) sorts after any number
func lessNullableInt(a, b *int, labelA, labelB string) bool {
	switch {
	case a == nil && b == nil:
		return labelA < labelB
	case a == nil:
		return false
	case b == nil:
		return true
	case *a != *b:
		return *a < *b
	default:
		return labelA < labelB
	}
}

func lessNumericThenString(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	if errA == nil {
		return true
	}
	if errB == nil {
		return false
	}
	return a < b
}
