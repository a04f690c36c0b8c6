package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel. This ensures all parcels
	// are properly validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")
)

// Parcel represents a shipped parcel handled by a single distributor.
// It is the aggregate root for the parcel lifecycle.
//
// Parcel follows these invariants:
//   - ID and distributor are externally assigned and immutable after creation
//   - Status and classification code are only ever written together; the
//     classification code always reflects the registry entry of the current
//     status at the time of the last transition
//   - StatusChangedAt records the commit time (UTC) of the last transition
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// id is the externally assigned tracking identifier
	id string

	// distributor identifies the partner whose status vocabulary governs
	// this parcel
	distributor string

	// status is the current lifecycle status name
	status string

	// classificationCode is the normalized code derived from status
	classificationCode string

	// comments is free-form operator text, updated on transitions
	comments string

	// site is set by external ingestion and only read by reporting
	site string

	// statusChangedAt is the commit time of the last transition
	statusChangedAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel with validation.
//
// Parameters:
//   - id: externally assigned tracking identifier (required)
//   - distributor: owning distributor name (required)
//   - status: initial status name (required)
//   - classificationCode: code registered for the initial status
//   - at: timestamp recorded as the initial status change time
//
// Returns a validation error if any required value is missing.
func NewParcel(id, distributor, status, classificationCode string, at time.Time) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDistributor(distributor),
		p.applyStatus(status, classificationCode, at),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence without re-running
// creation-time rules. Required fields are still validated so corrupt rows
// surface as errors instead of invalid aggregates.
func RestoreParcel(id, distributor, status, classificationCode, comments, site string, statusChangedAt time.Time) (*Parcel, error) {
	p, err := NewParcel(id, distributor, status, classificationCode, statusChangedAt)
	if err != nil {
		return nil, err
	}

	p.comments = comments
	p.site = site
	return p, nil
}

// Validate ensures the Parcel was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their tracking identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id == other.id
}

// ID returns the externally assigned tracking identifier.
func (p *Parcel) ID() string {
	return p.id
}

// Distributor returns the name of the distributor handling this parcel.
func (p *Parcel) Distributor() string {
	return p.distributor
}

// Status returns the current status name.
func (p *Parcel) Status() string {
	return p.status
}

// ClassificationCode returns the code derived from the current status.
func (p *Parcel) ClassificationCode() string {
	return p.classificationCode
}

// Comments returns the operator comments recorded with the last transition.
func (p *Parcel) Comments() string {
	return p.comments
}

// Site returns the handling site, if ingestion provided one.
func (p *Parcel) Site() string {
	return p.site
}

// StatusChangedAt returns the commit time of the last transition.
func (p *Parcel) StatusChangedAt() time.Time {
	return p.statusChangedAt
}

// ChangeStatus moves the parcel to a new status.
//
// Status and classification code are written together with the transition
// timestamp; comments are replaced only when provided (nil leaves the
// existing comments untouched). The caller is responsible for having
// resolved classificationCode from the distributor's status registry;
// ChangeStatus never invents a code.
//
// Returns a validation error if status is empty or at is the zero time,
// leaving the parcel unchanged.
func (p *Parcel) ChangeStatus(status, classificationCode string, comments *string, at time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if err := p.applyStatus(status, classificationCode, at); err != nil {
		return err
	}

	if comments != nil {
		p.comments = *comments
	}
	return nil
}

func (p *Parcel) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("parcelID")
	}
	p.id = id
	return nil
}

func (p *Parcel) setDistributor(distributor string) error {
	if distributor == "" {
		return errs.NewValueIsRequiredError("distributor")
	}
	p.distributor = distributor
	return nil
}

func (p *Parcel) applyStatus(status, classificationCode string, at time.Time) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("statusChangedAt")
	}

	p.status = status
	p.classificationCode = classificationCode
	p.statusChangedAt = at.UTC()
	return nil
}
