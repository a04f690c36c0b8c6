// Package distributor contains the Distributor read model: the partner
// organizations parcels are handed to, with the contact address used by the
// overdue notification job. Distributors are administered out of band and
// only read here.
package distributor

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// ErrDistributorIsNotConstructed is returned when a Distributor was not
// created through NewDistributor.
var ErrDistributorIsNotConstructed = errors.New("Distributor must be created via NewDistributor")

// Distributor is a partner organization identified by its unique name.
type Distributor struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// NewDistributor creates a Distributor with validation. Name and email are
// required; the email is the address overdue notifications are sent to.
func NewDistributor(id kernel.UUID, name, email string) (*Distributor, error) {
	d := &Distributor{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Distributor was properly constructed.
func (d *Distributor) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDistributorIsNotConstructed
	}

	return nil
}

// ID returns the distributor identifier.
func (d *Distributor) ID() kernel.UUID {
	return d.id
}

// Name returns the distributor's unique name.
func (d *Distributor) Name() string {
	return d.name
}

// Email returns the notification address.
func (d *Distributor) Email() string {
	return d.email
}

func (d *Distributor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Distributor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Distributor) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	d.email = email
	return nil
}
