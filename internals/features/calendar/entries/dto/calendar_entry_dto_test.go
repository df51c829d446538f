package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "somangchurch_backend/internals/features/calendar/entries/model"
)

func strPtr(s string) *string { return &s }

func baseRequest(kind string) CreateCalendarEntryRequest {
	return CreateCalendarEntryRequest{
		CalendarEntrySingDate: "2024-06-02",
		CalendarEntryTitle:    "주일 찬양",
		CalendarEntryKind:     kind,
	}
}

func TestCheckKindSingleLink(t *testing.T) {
	req := baseRequest(m.KindSingleLink)
	assert.Error(t, req.CheckKind(), "missing link")

	req.CalendarEntryLink = strPtr("https://example.com/sheet")
	assert.NoError(t, req.CheckKind())

	req.CalendarEntryBody = strPtr("가사")
	assert.Error(t, req.CheckKind(), "foreign payload")
}

func TestCheckKindFourPartLink(t *testing.T) {
	req := baseRequest(m.KindFourPartLink)
	assert.Error(t, req.CheckKind())

	req.CalendarEntryPartLinks = []string{
		"https://example.com/soprano",
		"https://example.com/alto",
		"https://example.com/tenor",
	}
	assert.Error(t, req.CheckKind(), "needs exactly 4 links")

	req.CalendarEntryPartLinks = append(req.CalendarEntryPartLinks, "https://example.com/bass")
	assert.NoError(t, req.CheckKind())
}

func TestCheckKindText(t *testing.T) {
	req := baseRequest(m.KindText)
	assert.Error(t, req.CheckKind())

	req.CalendarEntryBody = strPtr("다음 주 연습은 오후 2시")
	assert.NoError(t, req.CheckKind())

	req.CalendarEntryLink = strPtr("https://example.com")
	assert.Error(t, req.CheckKind())
}

func TestToModelCarriesOnlyDeclaredPayload(t *testing.T) {
	req := baseRequest(m.KindSingleLink)
	req.CalendarEntryLink = strPtr("https://example.com/sheet")
	// stale fields from a client that swapped kinds
	req.CalendarEntryBody = strPtr("ignored")

	mdl := req.ToModel()
	require.NotNil(t, mdl.CalendarEntryLink)
	assert.Nil(t, mdl.CalendarEntryBody)
	assert.Empty(t, mdl.CalendarEntryPartLinks)
	assert.Equal(t, "2024-06-02", mdl.CalendarEntrySingDate.Format("2006-01-02"))
}
