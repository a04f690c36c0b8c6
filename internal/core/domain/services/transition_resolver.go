package services

import (
	"fmt"
	"time"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/status"
	"parceltrack/internal/pkg/errs"
)

// StatusChange captures one validated transition: the parcel's state before
// and after, and the commit timestamp shared by the parcel update and the
// audit entry. It is a plain value; the application layer turns it into an
// audit.Entry once the parcel update is confirmed.
type StatusChange struct {
	ParcelID string

	OldStatus string
	NewStatus string

	OldClassificationCode string
	NewClassificationCode string

	ChangedAt time.Time
}

// TransitionResolver validates a requested status transition against the
// distributor's status registry and applies it to the parcel.
//
// The resolver enforces the active-only policy: a transition must target a
// status that is currently active for the parcel's distributor. Inactive
// (retired) statuses stay readable for audit history but are never
// re-assignable.
//
// Example:
//
//	change, err := services.NewTransitionResolver().Apply(p, entry, comments, time.Now().UTC())
//	if err != nil {
//	    return err // parcel is untouched
//	}
//	// p now carries the new status; change holds the old values for auditing
type TransitionResolver struct{}

// NewTransitionResolver creates a transition resolver.
func NewTransitionResolver() *TransitionResolver {
	return &TransitionResolver{}
}

// Apply moves p to the status described by entry, returning the captured
// change. comments replaces the parcel's comments when non-nil. at becomes
// the transition's commit timestamp on both the parcel and the change.
//
// Fails with a value-is-invalid error (no mutation) when:
//   - entry belongs to a different distributor than p
//   - entry is inactive
func (r *TransitionResolver) Apply(p *parcel.Parcel, entry *status.Entry, comments *string, at time.Time) (StatusChange, error) {
	if err := p.Validate(); err != nil {
		return StatusChange{}, err
	}
	if err := entry.Validate(); err != nil {
		return StatusChange{}, err
	}

	if entry.Distributor() != p.Distributor() {
		return StatusChange{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is registered for distributor %s, parcel belongs to %s",
				entry.Name(), entry.Distributor(), p.Distributor()),
		)
	}

	if !entry.IsActive() {
		return StatusChange{}, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not active for distributor %s", entry.Name(), entry.Distributor()),
		)
	}

	change := StatusChange{
		ParcelID:              p.ID(),
		OldStatus:             p.Status(),
		OldClassificationCode: p.ClassificationCode(),
		NewStatus:             entry.Name(),
		NewClassificationCode: entry.ClassificationCode(),
		ChangedAt:             at.UTC(),
	}

	if err := p.ChangeStatus(entry.Name(), entry.ClassificationCode(), comments, at); err != nil {
		return StatusChange{}, err
	}

	return change, nil
}
