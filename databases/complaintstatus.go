package databases

import (
	"context"
	"strings"

	"github.com/cybercell/cybercrime-portal-api/models"
)

// ComplaintStatusDatabase contains the methods to query the seeded complaint
// status table. Tracking is public; there is no role gating here.
type ComplaintStatusDatabase interface {
	// Lookup is an exact-match, case-insensitive lookup on complaint id.
	// No partial or fuzzy matching.
	Lookup(ctx context.Context, complaintID string) (*models.ComplaintStatus, error)
}

type complaintStatusDatabase struct {
	statuses []models.ComplaintStatus
}

// NewComplaintStatusDatabase initializes the status table from the seed
func NewComplaintStatusDatabase() ComplaintStatusDatabase {
	return &complaintStatusDatabase{statuses: seedComplaintStatuses()}
}

func (c *complaintStatusDatabase) Lookup(ctx context.Context, complaintID string) (*models.ComplaintStatus, error) {
	for i := range c.statuses {
		if strings.EqualFold(c.statuses[i].ComplaintID, complaintID) {
			status := c.statuses[i]
			return &status, nil
		}
	}
	return nil, ErrNotFound
}
