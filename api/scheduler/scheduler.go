// Package scheduler runs the portal's periodic background jobs.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cybercell/cybercrime-portal-api/databases"
)

// Scheduler handles periodic background jobs for the portal
type Scheduler struct {
	cron   *cron.Cron
	CaseDB databases.CaseDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(caseDB databases.CaseDatabase) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		CaseDB: caseDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Log a caseload snapshot at the top of every hour
	_, err := s.cron.AddFunc("0 * * * *", s.snapshotCaseload)
	if err != nil {
		zap.S().Errorw("failed to register caseload snapshot job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Portal scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Portal scheduler stopped")
}

func (s *Scheduler) snapshotCaseload() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	snapshot, err := s.CaseDB.Stats(ctx)
	if err != nil {
		zap.S().Errorw("failed to snapshot caseload", "error", err)
		return
	}

	zap.S().Infow("caseload snapshot",
		"total", snapshot.Total,
		"new", snapshot.New,
		"underInvestigation", snapshot.UnderInvestigation,
		"resolved", snapshot.Resolved,
		"confidential", snapshot.Confidential,
	)
}
