package status

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")
)

// Entry represents a single status registered for a distributor, together
// with the classification code that status maps to.
//
// Entry invariants:
//   - (distributor, name) is unique within the registry
//   - An inactive entry is never assignable to a parcel, but remains valid
//     for interpreting historical audit entries
//   - Deactivation is idempotent: deactivating an inactive entry succeeds
type Entry struct {
	// id is the registry entry identifier
	id kernel.UUID

	// distributor partitions the status vocabulary
	distributor string

	// name is the status name, unique within a distributor
	name string

	// classificationCode is the code this status maps to
	classificationCode string

	// active marks whether the status is currently assignable
	active bool

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry creates an active registry entry for the given distributor,
// status name and classification code. All three values are required.
func NewEntry(id kernel.UUID, distributor, name, classificationCode string) (*Entry, error) {
	e := &Entry{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setDistributor(distributor),
		e.setDetails(name, classificationCode),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence, including its
// active flag.
func RestoreEntry(id kernel.UUID, distributor, name, classificationCode string, active bool) (*Entry, error) {
	e, err := NewEntry(id, distributor, name, classificationCode)
	if err != nil {
		return nil, err
	}

	e.active = active
	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// IsEqual compares two entries by their identifiers.
func (e *Entry) IsEqual(other *Entry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the registry entry identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Distributor returns the distributor this entry belongs to.
func (e *Entry) Distributor() string {
	return e.distributor
}

// Name returns the status name.
func (e *Entry) Name() string {
	return e.name
}

// ClassificationCode returns the code this status maps to.
func (e *Entry) ClassificationCode() string {
	return e.classificationCode
}

// IsActive reports whether the status is currently assignable.
func (e *Entry) IsActive() bool {
	return e.active
}

// Update replaces the status name and classification code.
// Used by the administrative edit operation; both values are required.
func (e *Entry) Update(name, classificationCode string) error {
	if err := e.Validate(); err != nil {
		return err
	}

	return e.setDetails(name, classificationCode)
}

// Deactivate marks the entry as no longer assignable.
// Deactivating an already inactive entry is a no-op; the operation is
// idempotent by effect.
func (e *Entry) Deactivate() {
	e.active = false
}

// Activate marks the entry as assignable again, reversing a deactivation.
// Activating an already active entry is a no-op.
func (e *Entry) Activate() {
	e.active = true
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setDistributor(distributor string) error {
	if distributor == "" {
		return errs.NewValueIsRequiredError("distributor")
	}
	e.distributor = distributor
	return nil
}

func (e *Entry) setDetails(name, classificationCode string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if classificationCode == "" {
		return errs.NewValueIsRequiredError("classificationCode")
	}

	e.name = name
	e.classificationCode = classificationCode
	return nil
}
