package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func rec(ministry, name string, choir bool, round string, grade, class *int, part, status *string) RosterRecord {
	return RosterRecord{
		RecordID:     uuid.New(),
		MinistryID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(ministry)),
		MinistryName: ministry,
		IsChoir:      choir,
		Round:        round,
		MemberID:     uuid.New(),
		MemberName:   name,
		Part:         part,
		Grade:        grade,
		Class:        class,
		Status:       status,
	}
}

func collectLeafRecords(groups []RosterGroup) []RosterRecord {
	var out []RosterRecord
	for _, g := range groups {
		out = append(out, g.Records...)
		out = append(out, collectLeafRecords(g.SubGroups)...)
	}
	return out
}

func TestBuildRosterPartitionsInput(t *testing.T) {
	records := []RosterRecord{
		rec("유년부", "김하늘", false, "1", ptr(3), ptr(2), nil, ptr("present")),
		rec("유년부", "이바다", false, "1", ptr(3), ptr(1), nil, ptr("absent")),
		rec("유년부", "박솔", false, "1", nil, nil, nil, nil),
		rec("유년부", "정강", false, "2", ptr(1), ptr(1), nil, ptr("late")),
		rec("시온찬양대", "최은혜", true, "1", nil, nil, ptr("소프라노"), ptr("present")),
		rec("시온찬양대", "한믿음", true, "1", nil, nil, nil, ptr("present")),
	}

	rosters := BuildRoster(records)

	seen := map[uuid.UUID]int{}
	total := 0
	for _, mr := range rosters {
		for _, rr := range mr.Rounds {
			for _, r := range collectLeafRecords(rr.Groups) {
				seen[r.RecordID]++
				total++
			}
		}
	}

	// every record lands in exactly one leaf group, none dropped or duplicated
	require.Equal(t, len(records), total)
	for _, r := range records {
		require.Equal(t, 1, seen[r.RecordID], "record %s", r.MemberName)
	}
}

func TestBuildRosterUnknownBucketSortsLast(t *testing.T) {
	records := []RosterRecord{
		rec("유년부", "a", false, "1", nil, nil, nil, nil),
		rec("유년부", "b", false, "1", ptr(6), ptr(1), nil, nil),
		rec("유년부", "c", false, "1", ptr(1), ptr(1), nil, nil),
		rec("유년부", "d", false, "1", ptr(10), nil, nil, nil),
	}

	rosters := BuildRoster(records)
	require.Len(t, rosters, 1)
	groups := rosters[0].Rounds[0].Groups

	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	require.Equal(t, []string{"1학년", "6학년", "10학년", UnknownBucket}, labels)

	// class sub-buckets: numbered classes before the unknown class
	last := groups[2] // 10학년 has a nil class
	require.Equal(t, UnknownBucket, last.SubGroups[len(last.SubGroups)-1].Label)
}

func TestBuildRosterChoirGroupsByPart(t *testing.T) {
	records := []RosterRecord{
		rec("시온찬양대", "가", true, "1", nil, nil, ptr("테너"), ptr("present")),
		rec("시온찬양대", "나", true, "1", nil, nil, ptr("소프라노"), ptr("present")),
		rec("시온찬양대", "다", true, "1", nil, nil, nil, ptr("absent")),
		rec("시온찬양대", "라", true, "1", nil, nil, ptr("소프라노"), nil),
	}

	rosters := BuildRoster(records)
	require.Len(t, rosters, 1)
	groups := rosters[0].Rounds[0].Groups

	require.Len(t, groups, 3)
	require.Equal(t, UnknownBucket, groups[len(groups)-1].Label)

	var sop *RosterGroup
	for i := range groups {
		if groups[i].Label == "소프라노" {
			sop = &groups[i]
		}
	}
	require.NotNil(t, sop)
	require.Equal(t, 2, sop.TotalCount)
	require.Equal(t, 1, sop.PresentCount)
	require.Empty(t, sop.SubGroups)
}

func TestBuildRosterCounts(t *testing.T) {
	records := []RosterRecord{
		rec("유년부", "a", false, "1", ptr(1), ptr(1), nil, ptr("present")),
		rec("유년부", "b", false, "1", ptr(1), ptr(1), nil, ptr("present")),
		rec("유년부", "c", false, "1", ptr(1), ptr(2), nil, ptr("late")),
		rec("유년부", "d", false, "1", ptr(2), ptr(1), nil, ptr("absent")),
		rec("유년부", "e", false, "2", ptr(2), ptr(1), nil, ptr("present")),
	}

	rosters := BuildRoster(records)
	require.Len(t, rosters, 1)
	mr := rosters[0]

	require.Equal(t, 3, mr.PresentCount)
	require.Equal(t, 5, mr.TotalCount)

	round1 := mr.Rounds[0]
	require.Equal(t, "1", round1.Round)
	require.Equal(t, 2, round1.PresentCount)
	require.Equal(t, 4, round1.TotalCount)

	grade1 := round1.Groups[0]
	require.Equal(t, "1학년", grade1.Label)
	require.Equal(t, 2, grade1.PresentCount)
	require.Equal(t, 3, grade1.TotalCount)
	require.Equal(t, "1반", grade1.SubGroups[0].Label)
	require.Equal(t, 2, grade1.SubGroups[0].PresentCount)
}

func TestBuildRosterOrdersMembersByName(t *testing.T) {
	records := []RosterRecord{
		rec("유년부", "하진", false, "1", ptr(1), ptr(1), nil, nil),
		rec("유년부", "강민", false, "1", ptr(1), ptr(1), nil, nil),
		rec("유년부", "나래", false, "1", ptr(1), ptr(1), nil, nil),
	}

	rosters := BuildRoster(records)
	leaf := rosters[0].Rounds[0].Groups[0].SubGroups[0]

	names := make([]string, 0, len(leaf.Records))
	for _, r := range leaf.Records {
		names = append(names, r.MemberName)
	}
	require.Equal(t, []string{"강민", "나래", "하진"}, names)
}

func TestBuildRosterRoundsAscend(t *testing.T) {
	records := []RosterRecord{
		rec("유년부", "a", false, "3", ptr(1), ptr(1), nil, nil),
		rec("유년부", "b", false, "1", ptr(1), ptr(1), nil, nil),
		rec("유년부", "c", false, "2", ptr(1), ptr(1), nil, nil),
	}

	rosters := BuildRoster(records)
	var rounds []string
	for _, rr := range rosters[0].Rounds {
		rounds = append(rounds, rr.Round)
	}
	require.Equal(t, []string{"1", "2", "3"}, rounds)
}
