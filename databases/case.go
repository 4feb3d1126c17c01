package databases

import (
	"context"
	"strings"

	"github.com/cybercell/cybercrime-portal-api/models"
)

// FilterAll is the sentinel meaning "do not filter on this field"
const FilterAll = "all"

// CaseDatabase contains the methods to query the seeded case collection.
// The collection is read-only; there is no create/update/delete path.
type CaseDatabase interface {
	// ListVisible returns every case the viewer may see, in stable seed
	// order. Confidential cases are omitted entirely for non-admin viewers,
	// never returned with masked fields.
	ListVisible(ctx context.Context, viewer *models.Identity) ([]models.Case, error)
	// FindByID is an exact-match lookup with NO visibility filtering.
	// Callers must apply IsVisible before rendering the record.
	FindByID(ctx context.Context, id string) (*models.Case, error)
	// Search narrows ListVisible by free-text query (case-insensitive
	// substring over id, title, description) and exact status/type matches.
	// The three predicates are conjunctive; FilterAll disables one.
	Search(ctx context.Context, viewer *models.Identity, query, status, caseType string) ([]models.Case, error)
	// Types returns the distinct case types in seed order
	Types(ctx context.Context) ([]string, error)
	// Stats aggregates counts for the scheduler snapshot
	Stats(ctx context.Context) (models.CaseloadSnapshot, error)
}

type caseDatabase struct {
	cases []models.Case
}

// NewCaseDatabase initializes the case collection from the seed
func NewCaseDatabase() CaseDatabase {
	return &caseDatabase{cases: seedCases()}
}

// IsVisible reports whether the viewer's role permits seeing the record
func IsVisible(viewer *models.Identity, record models.Case) bool {
	return !record.Confidential || viewer.IsAdmin()
}

func (c *caseDatabase) ListVisible(ctx context.Context, viewer *models.Identity) ([]models.Case, error) {
	visible := []models.Case{}
	for _, record := range c.cases {
		if IsVisible(viewer, record) {
			visible = append(visible, record)
		}
	}
	return visible, nil
}

func (c *caseDatabase) FindByID(ctx context.Context, id string) (*models.Case, error) {
	for i := range c.cases {
		if c.cases[i].ID == id {
			record := c.cases[i]
			return &record, nil
		}
	}
	return nil, ErrNotFound
}

func (c *caseDatabase) Search(ctx context.Context, viewer *models.Identity, query, status, caseType string) ([]models.Case, error) {
	visible, err := c.ListVisible(ctx, viewer)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := []models.Case{}
	for _, record := range visible {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(record.ID), q) ||
			strings.Contains(strings.ToLower(record.Title), q) ||
			strings.Contains(strings.ToLower(record.Description), q)
		matchesStatus := status == FilterAll || record.Status == models.CaseStatus(status)
		matchesType := caseType == FilterAll || record.Type == caseType

		if matchesQuery && matchesStatus && matchesType {
			matches = append(matches, record)
		}
	}
	return matches, nil
}

func (c *caseDatabase) Types(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	types := []string{}
	for _, record := range c.cases {
		if !seen[record.Type] {
			seen[record.Type] = true
			types = append(types, record.Type)
		}
	}
	return types, nil
}

func (c *caseDatabase) Stats(ctx context.Context) (models.CaseloadSnapshot, error) {
	snapshot := models.CaseloadSnapshot{Total: len(c.cases)}
	for _, record := range c.cases {
		switch record.Status {
		case models.CaseStatusNew:
			snapshot.New++
		case models.CaseStatusUnderInvestigation:
			snapshot.UnderInvestigation++
		case models.CaseStatusResolved:
			snapshot.Resolved++
		}
		if record.Confidential {
			snapshot.Confidential++
		}
	}
	return snapshot, nil
}
