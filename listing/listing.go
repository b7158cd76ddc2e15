// Package listing turns spreadsheet rows into fully defaulted internship
// listings.
package listing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/darianmavgo/internseed/converters/common"
)

var (
	// ErrMissingColumn is returned when the sheet header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")
	// ErrMissingValue is returned when a row has no value for a required column.
	ErrMissingValue = errors.New("missing required value")
)

// Sheet column names.
const (
	ColID           = "ID"
	ColTitle        = "Title"
	ColSector       = "Sector"
	ColExposureType = "Exposure Type"
	ColTotalHours   = "Total Hours"
	ColDuration     = "Duration (Weeks/Days)"
	ColScheduleNote = "Schedule Note"
	ColWhatLearn    = "What you'll learn"
	ColWhatDo       = "What you'll do"
	ColArtifactType = "Final Artifact Type"
	ColArtifactDesc = "Final Artifact Description"
	ColMentorBio    = "Mentor Bio"
	ColPrereqs      = "Prerequisites"
	ColSafetyNote   = "Safety Note"
	ColParentRole   = "Parent Role"
	ColCost         = "Cost (INR)"
	ColCostNote     = "Cost Note"
)

// RequiredColumns must be present in the header row.
var RequiredColumns = []string{ColID, ColTitle}

// textDefaults holds the value used when a text column is absent.
// Columns not listed default to "".
var textDefaults = map[string]string{
	ColSector:       "General",
	ColExposureType: "General",
	ColPrereqs:      "None",
	ColParentRole:   "Consent only",
}

// Listing is a normalized internship listing ready for SQL serialization.
type Listing struct {
	ID           string
	Title        string
	Sector       string
	ExposureType string
	CompanyName  string

	TotalHours    *float64
	DurationWeeks *float64
	DurationDays  *float64

	ScheduleNote  string
	WhatLearn     string
	WhatDo        string
	ArtifactType  string
	ArtifactDesc  string
	MentorBio     string
	Prerequisites string
	SafetyNote    string
	ParentRole    string
	CostINR       float64
	CostNote      string

	Location Location
	Mode     Mode
}

// CheckColumns verifies that every required column is in the header.
func CheckColumns(headers []string) error {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}
	for _, col := range RequiredColumns {
		if !seen[col] {
			return fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return nil
}

// Normalize maps a source record to a Listing, applying defaults and the
// duration and placement rules. It fails only on a missing ID or Title.
func Normalize(rec common.Record) (Listing, error) {
	var l Listing

	for _, col := range RequiredColumns {
		if !rec.Has(col) {
			return l, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	id, ok := rec.Get(ColID)
	if !ok {
		return l, fmt.Errorf("%w: %q", ErrMissingValue, ColID)
	}
	title, ok := rec.Get(ColTitle)
	if !ok {
		return l, fmt.Errorf("%w: %q for %s", ErrMissingValue, ColTitle, id)
	}

	l.ID = id
	l.Title = title
	l.Sector = text(rec, ColSector)
	l.ExposureType = text(rec, ColExposureType)
	l.CompanyName = l.Sector + " Program"

	l.TotalHours = number(rec, ColTotalHours)
	if raw, ok := rec.Get(ColDuration); ok {
		d := ParseDuration(raw)
		l.DurationWeeks, l.DurationDays = d.Weeks, d.Days
	}

	l.ScheduleNote = text(rec, ColScheduleNote)
	l.WhatLearn = text(rec, ColWhatLearn)
	l.WhatDo = text(rec, ColWhatDo)
	l.ArtifactType = text(rec, ColArtifactType)
	l.ArtifactDesc = text(rec, ColArtifactDesc)
	l.MentorBio = text(rec, ColMentorBio)
	l.Prerequisites = text(rec, ColPrereqs)
	l.SafetyNote = text(rec, ColSafetyNote)
	l.ParentRole = text(rec, ColParentRole)
	l.CostNote = text(rec, ColCostNote)
	if cost := number(rec, ColCost); cost != nil {
		l.CostINR = *cost
	}

	l.Location, l.Mode = InferPlacement(l.ScheduleNote, l.WhatDo)
	return l, nil
}

func text(rec common.Record, col string) string {
	if v, ok := rec.Get(col); ok {
		return v
	}
	return textDefaults[col]
}

// number returns nil for an absent or non-numeric cell.
func number(rec common.Record, col string) *float64 {
	v, ok := rec.Get(col)
	if !ok {
		return nil
	}
	f, ok := parseNumber(v)
	if !ok {
		return nil
	}
	return &f
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
