// Package generator renders internship listings as INSERT statements for
// the opportunities table.
package generator

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/darianmavgo/internseed/converters/common"
	"github.com/darianmavgo/internseed/listing"
	"github.com/darianmavgo/internseed/logging"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultRecruiterID owns every generated listing.
	DefaultRecruiterID = "6f1c2a9e-4b7d-4e3a-9c5f-2d8b7a1e0c34"

	// Table is the target of the generated statements.
	Table = "public.opportunities"

	employmentType = "Internship"
	status         = "active"
)

// Columns is the fixed INSERT column list. Statement arguments follow this order.
var Columns = []string{
	"title",
	"company_name",
	"employment_type",
	"location",
	"mode",
	"sector",
	"exposure_type",
	"total_hours",
	"duration_weeks",
	"duration_days",
	"schedule_note",
	"what_youll_learn",
	"what_youll_do",
	"final_artifact_type",
	"final_artifact_description",
	"mentor_bio",
	"prerequisites",
	"safety_note",
	"parent_role",
	"cost_inr",
	"cost_note",
	"recruiter_id",
	"status",
	"is_active",
}

var _ = uuid.MustParse(DefaultRecruiterID)

// Generator writes INSERT statements for one recruiter.
type Generator struct {
	recruiterID string
	insertSQL   string
	log         logrus.FieldLogger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress messages.
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Generator) {
		g.log = l
	}
}

// New creates a Generator. The recruiter id must be a UUID.
func New(recruiterID string, opts ...Option) (*Generator, error) {
	id, err := uuid.Parse(recruiterID)
	if err != nil {
		return nil, fmt.Errorf("invalid recruiter id %q: %w", recruiterID, err)
	}

	stmt, err := common.GenPreparedStmt(Table, Columns)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insert statement: %w", err)
	}

	g := &Generator{
		recruiterID: id.String(),
		insertSQL:   sqlx.Rebind(sqlx.DOLLAR, stmt),
		log:         logging.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// RecruiterID returns the canonical recruiter id.
func (g *Generator) RecruiterID() string {
	return g.recruiterID
}

// WriteHeader writes the two comment lines and a blank line.
func (g *Generator) WriteHeader(w io.Writer, source string) error {
	_, err := fmt.Fprintf(w, "-- Internship opportunities imported from %s\n-- Recruiter ID: %s\n\n",
		commentText(source), g.recruiterID)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// Statement builds the parameterized INSERT for a listing.
func (g *Generator) Statement(l listing.Listing) (common.Statement, error) {
	prereqs, err := jsonArray(l.Prerequisites)
	if err != nil {
		return common.Statement{}, fmt.Errorf("failed to encode prerequisites: %w", err)
	}

	args := []interface{}{
		l.Title,
		l.CompanyName,
		employmentType,
		string(l.Location),
		string(l.Mode),
		l.Sector,
		l.ExposureType,
		l.TotalHours,
		l.DurationWeeks,
		l.DurationDays,
		l.ScheduleNote,
		l.WhatLearn,
		l.WhatDo,
		l.ArtifactType,
		l.ArtifactDesc,
		l.MentorBio,
		common.JSONB(prereqs),
		l.SafetyNote,
		l.ParentRole,
		l.CostINR,
		l.CostNote,
		g.recruiterID,
		status,
		true,
	}
	return common.Statement{SQL: g.insertSQL, Args: args}, nil
}

// WriteListing writes the identifying comment and the INSERT for a listing,
// followed by a blank line.
func (g *Generator) WriteListing(w io.Writer, l listing.Listing) error {
	stmt, err := g.Statement(l)
	if err != nil {
		return err
	}
	sql, err := common.Interpolate(stmt)
	if err != nil {
		return fmt.Errorf("failed to render statement for %s: %w", l.ID, err)
	}
	if _, err := fmt.Fprintf(w, "-- %s: %s\n%s;\n\n", commentText(l.ID), commentText(l.Title), sql); err != nil {
		return fmt.Errorf("failed to write statement for %s: %w", l.ID, err)
	}
	return nil
}

// Generate writes the header and one INSERT per data row of the sheet. The
// first failing row aborts the batch; output written so far is left as is.
// It returns the number of statements written.
func (g *Generator) Generate(ctx context.Context, provider common.RowProvider, sheet string, source string, w io.Writer) (int, error) {
	if err := listing.CheckColumns(provider.Headers(sheet)); err != nil {
		return 0, fmt.Errorf("sheet %s: %w", sheet, err)
	}

	bw := bufio.NewWriter(w)
	if err := g.WriteHeader(bw, source); err != nil {
		return 0, err
	}

	count := 0
	row := 1
	err := common.ScanRecords(ctx, provider, sheet, func(rec common.Record) error {
		row++
		l, err := listing.Normalize(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
		if err := g.WriteListing(bw, l); err != nil {
			return err
		}
		count++
		g.log.WithFields(logrus.Fields{"row": row, "id": l.ID}).Debug("wrote listing")
		return nil
	})

	if flushErr := bw.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("failed to flush output: %w", flushErr)
	}
	if err != nil {
		return count, err
	}

	g.log.WithFields(logrus.Fields{"sheet": sheet, "statements": count}).Info("generation complete")
	return count, nil
}

// jsonArray encodes s as a one-element JSON array. The text is never split.
func jsonArray(s string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string{s}); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// commentText keeps a value on a single comment line.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
