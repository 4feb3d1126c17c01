// Package dispatch models the portal's simulated external effects: bank data
// requests, behavioral analysis runs, complaint filings, and investigation
// notes all resolve after a fixed delay with a fire-and-forget acknowledgment
// and no stored effect.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Kind identifies the simulated operation being dispatched
type Kind string

// Dispatchable operation kinds
const (
	KindComplaintFiled    Kind = "complaint_filed"
	KindBankDataRequest   Kind = "bank_data_request"
	KindBehaviorAnalysis  Kind = "behavior_analysis"
	KindInvestigationNote Kind = "investigation_note"
)

// Command describes one simulated operation
type Command struct {
	Kind        Kind
	Target      string // bank name, case id, etc.
	Detail      string
	RequestedBy string
}

// Ack is the transient acknowledgment every command resolves to. Commands
// never fail and cannot be aborted once started.
type Ack struct {
	Reference   string
	Message     string
	CompletedAt time.Time
}

// Dispatcher submits commands to the simulated outside world
type Dispatcher interface {
	Submit(ctx context.Context, cmd Command) Ack
}

// Simulated resolves every command after a fixed per-kind delay. The wait and
// clock are injectable so tests run without real time passing.
type Simulated struct {
	delays map[Kind]time.Duration
	wait   func(d time.Duration)
	now    func() time.Time
}

// Option configures a Simulated dispatcher
type Option func(*Simulated)

// WithWait replaces the blocking wait, used by tests
func WithWait(wait func(d time.Duration)) Option {
	return func(s *Simulated) { s.wait = wait }
}

// WithNow replaces the clock, used by tests
func WithNow(now func() time.Time) Option {
	return func(s *Simulated) { s.now = now }
}

// NewSimulated creates a dispatcher with the portal's fixed delays
func NewSimulated(opts ...Option) *Simulated {
	s := &Simulated{
		delays: map[Kind]time.Duration{
			KindComplaintFiled:    2 * time.Second,
			KindBankDataRequest:   1500 * time.Millisecond,
			KindBehaviorAnalysis:  3 * time.Second,
			KindInvestigationNote: 0,
		},
		wait: func(d time.Duration) { time.Sleep(d) },
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit blocks for the command's fixed delay and returns its acknowledgment.
// The delay deliberately ignores ctx cancellation: a started operation always
// runs to completion.
func (s *Simulated) Submit(ctx context.Context, cmd Command) Ack {
	if d := s.delays[cmd.Kind]; d > 0 {
		s.wait(d)
	}

	ack := Ack{
		Reference:   uuid.NewString(),
		Message:     ackMessage(cmd),
		CompletedAt: s.now(),
	}
	zap.S().Infow("simulated operation completed",
		"kind", cmd.Kind,
		"target", cmd.Target,
		"reference", ack.Reference,
	)
	return ack
}

func ackMessage(cmd Command) string {
	switch cmd.Kind {
	case KindComplaintFiled:
		return "Complaint filed successfully"
	case KindBankDataRequest:
		return fmt.Sprintf("Request sent to %s", cmd.Target)
	case KindBehaviorAnalysis:
		return fmt.Sprintf("%s analysis has been completed and results updated", cmd.Detail)
	case KindInvestigationNote:
		return "Investigation note has been recorded"
	default:
		return "Operation completed"
	}
}
