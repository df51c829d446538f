package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Entry kinds. Each kind carries only its own payload fields:
// single-link → link, four-part-link → part_links, text → body.
const (
	KindSingleLink   = "single-link"
	KindFourPartLink = "four-part-link"
	KindText         = "text"
)

// Fixed order of the four part links: soprano, alto, tenor, bass.
const PartLinkCount = 4

type CalendarEntryModel struct {
	CalendarEntryID uuid.UUID `gorm:"type:uuid;primaryKey;column:calendar_entry_id" json:"calendar_entry_id"`

	CalendarEntrySingDate time.Time `gorm:"type:date;not null;index;column:calendar_entry_sing_date" json:"calendar_entry_sing_date"`
	CalendarEntryTitle    string    `gorm:"not null;column:calendar_entry_title" json:"calendar_entry_title"`
	CalendarEntryKind     string    `gorm:"not null;column:calendar_entry_kind" json:"calendar_entry_kind"`

	CalendarEntryLink      *string        `gorm:"column:calendar_entry_link" json:"calendar_entry_link,omitempty"`
	CalendarEntryPartLinks pq.StringArray `gorm:"type:text[];column:calendar_entry_part_links" json:"calendar_entry_part_links,omitempty"`
	CalendarEntryBody      *string        `gorm:"column:calendar_entry_body" json:"calendar_entry_body,omitempty"`

	CalendarEntryMinistryID *uuid.UUID `gorm:"type:uuid;column:calendar_entry_ministry_id" json:"calendar_entry_ministry_id,omitempty"`

	CalendarEntryCreatedAt time.Time      `gorm:"column:calendar_entry_created_at;autoCreateTime" json:"calendar_entry_created_at"`
	CalendarEntryUpdatedAt *time.Time     `gorm:"column:calendar_entry_updated_at;autoUpdateTime" json:"calendar_entry_updated_at,omitempty"`
	CalendarEntryDeletedAt gorm.DeletedAt `gorm:"column:calendar_entry_deleted_at;index" json:"calendar_entry_deleted_at,omitempty"`
}

func (CalendarEntryModel) TableName() string { return "calendar_entries" }

func (m *CalendarEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.CalendarEntryID == uuid.Nil {
		m.CalendarEntryID = uuid.New()
	}
	return nil
}
