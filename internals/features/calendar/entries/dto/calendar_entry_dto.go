package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "somangchurch_backend/internals/features/calendar/entries/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// CreateCalendarEntryRequest is a tagged union over kind: exactly the fields
// of the declared kind may be set.
type CreateCalendarEntryRequest struct {
	CalendarEntrySingDate   string     `json:"calendar_entry_sing_date" validate:"required,datetime=2006-01-02"`
	CalendarEntryTitle      string     `json:"calendar_entry_title" validate:"required,max=120"`
	CalendarEntryKind       string     `json:"calendar_entry_kind" validate:"required,oneof=single-link four-part-link text"`
	CalendarEntryLink       *string    `json:"calendar_entry_link" validate:"omitempty,url"`
	CalendarEntryPartLinks  []string   `json:"calendar_entry_part_links" validate:"omitempty,len=4,dive,url"`
	CalendarEntryBody       *string    `json:"calendar_entry_body" validate:"omitempty,max=2000"`
	CalendarEntryMinistryID *uuid.UUID `json:"calendar_entry_ministry_id" validate:"omitempty"`
}

// CheckKind enforces the union: the declared kind's payload is required and
// the other kinds' payloads must be absent.
func (r CreateCalendarEntryRequest) CheckKind() error {
	hasLink := r.CalendarEntryLink != nil && *r.CalendarEntryLink != ""
	hasParts := len(r.CalendarEntryPartLinks) > 0
	hasBody := r.CalendarEntryBody != nil && *r.CalendarEntryBody != ""

	switch r.CalendarEntryKind {
	case m.KindSingleLink:
		if !hasLink {
			return errors.New("single-link entry requires calendar_entry_link")
		}
		if hasParts || hasBody {
			return errors.New("single-link entry carries only calendar_entry_link")
		}
	case m.KindFourPartLink:
		if len(r.CalendarEntryPartLinks) != m.PartLinkCount {
			return errors.New("four-part-link entry requires exactly 4 part links")
		}
		if hasLink || hasBody {
			return errors.New("four-part-link entry carries only calendar_entry_part_links")
		}
	case m.KindText:
		if !hasBody {
			return errors.New("text entry requires calendar_entry_body")
		}
		if hasLink || hasParts {
			return errors.New("text entry carries only calendar_entry_body")
		}
	default:
		return errors.New("unknown calendar entry kind")
	}
	return nil
}

type FilterCalendarRequest struct {
	From       *string    `query:"from" validate:"omitempty,datetime=2006-01-02"`
	Days       *int       `query:"days" validate:"omitempty,min=0,max=366"`
	MinistryID *uuid.UUID `query:"ministry_id" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type CalendarEntryResponse struct {
	CalendarEntryID         uuid.UUID  `json:"calendar_entry_id"`
	CalendarEntrySingDate   string     `json:"calendar_entry_sing_date"`
	CalendarEntryTitle      string     `json:"calendar_entry_title"`
	CalendarEntryKind       string     `json:"calendar_entry_kind"`
	CalendarEntryLink       *string    `json:"calendar_entry_link,omitempty"`
	CalendarEntryPartLinks  []string   `json:"calendar_entry_part_links,omitempty"`
	CalendarEntryBody       *string    `json:"calendar_entry_body,omitempty"`
	CalendarEntryMinistryID *uuid.UUID `json:"calendar_entry_ministry_id,omitempty"`
	CalendarEntryCreatedAt  time.Time  `json:"calendar_entry_created_at"`
}

func (r CreateCalendarEntryRequest) ToModel() m.CalendarEntryModel {
	date, _ := time.Parse("2006-01-02", r.CalendarEntrySingDate)
	mdl := m.CalendarEntryModel{
		CalendarEntrySingDate:   date,
		CalendarEntryTitle:      r.CalendarEntryTitle,
		CalendarEntryKind:       r.CalendarEntryKind,
		CalendarEntryMinistryID: r.CalendarEntryMinistryID,
	}
	switch r.CalendarEntryKind {
	case m.KindSingleLink:
		mdl.CalendarEntryLink = r.CalendarEntryLink
	case m.KindFourPartLink:
		mdl.CalendarEntryPartLinks = pq.StringArray(r.CalendarEntryPartLinks)
	case m.KindText:
		mdl.CalendarEntryBody = r.CalendarEntryBody
	}
	return mdl
}

func FromCalendarEntryModel(mdl m.CalendarEntryModel) CalendarEntryResponse {
	resp := CalendarEntryResponse{
		CalendarEntryID:         mdl.CalendarEntryID,
		CalendarEntrySingDate:   mdl.CalendarEntrySingDate.Format("2006-01-02"),
		CalendarEntryTitle:      mdl.CalendarEntryTitle,
		CalendarEntryKind:       mdl.CalendarEntryKind,
		CalendarEntryMinistryID: mdl.CalendarEntryMinistryID,
		CalendarEntryCreatedAt:  mdl.CalendarEntryCreatedAt,
	}
	// emit only the declared kind's payload
	switch mdl.CalendarEntryKind {
	case m.KindSingleLink:
		resp.CalendarEntryLink = mdl.CalendarEntryLink
	case m.KindFourPartLink:
		resp.CalendarEntryPartLinks = []string(mdl.CalendarEntryPartLinks)
	case m.KindText:
		resp.CalendarEntryBody = mdl.CalendarEntryBody
	}
	return resp
}
