package audit

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("audit Entry must be created via NewEntry or RestoreEntry")
)

// Entry is one immutable line in the transition ledger: which parcel
// changed, from and to which status and classification code, and when.
// The old classification code may be empty for parcels ingested before
// codes were recorded; everything else is required.
type Entry struct {
	id kernel.UUID

	parcelID string

	oldStatus string
	newStatus string

	oldClassificationCode string
	newClassificationCode string

	// changedAt is the commit time of the transition, shared with the
	// parcel's statusChangedAt
	changedAt time.Time

	isConstructed bool
}

// NewEntry creates an audit entry for a completed transition.
func NewEntry(id kernel.UUID, parcelID, oldStatus, newStatus, oldClassificationCode, newClassificationCode string, changedAt time.Time) (*Entry, error) {
	e := &Entry{
		oldStatus:             oldStatus,
		oldClassificationCode: oldClassificationCode,
		newClassificationCode: newClassificationCode,
		isConstructed:         true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setParcelID(parcelID),
		e.setNewStatus(newStatus),
		e.setChangedAt(changedAt),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(id kernel.UUID, parcelID, oldStatus, newStatus, oldClassificationCode, newClassificationCode string, changedAt time.Time) (*Entry, error) {
	return NewEntry(id, parcelID, oldStatus, newStatus, oldClassificationCode, newClassificationCode, changedAt)
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// ID returns the audit entry identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the tracking identifier of the parcel that changed.
func (e *Entry) ParcelID() string {
	return e.parcelID
}

// OldStatus returns the status before the transition.
func (e *Entry) OldStatus() string {
	return e.oldStatus
}

// NewStatus returns the status after the transition.
func (e *Entry) NewStatus() string {
	return e.newStatus
}

// OldClassificationCode returns the classification code before the transition.
func (e *Entry) OldClassificationCode() string {
	return e.oldClassificationCode
}

// NewClassificationCode returns the classification code after the transition.
func (e *Entry) NewClassificationCode() string {
	return e.newClassificationCode
}

// ChangedAt returns the commit time of the transition (UTC).
func (e *Entry) ChangedAt() time.Time {
	return e.changedAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setParcelID(parcelID string) error {
	if parcelID == "" {
		return errs.NewValueIsRequiredError("parcelID")
	}
	e.parcelID = parcelID
	return nil
}

func (e *Entry) setNewStatus(newStatus string) error {
	if newStatus == "" {
		return errs.NewValueIsRequiredError("newStatus")
	}
	e.newStatus = newStatus
	return nil
}

func (e *Entry) setChangedAt(changedAt time.Time) error {
	if changedAt.IsZero() {
		return errs.NewValueIsRequiredError("changedAt")
	}
	e.changedAt = changedAt.UTC()
	return nil
}
