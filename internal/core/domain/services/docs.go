// Package services contains stateless domain services implementing rules
// that span more than one aggregate. The transition resolver is the heart of
// the system: it decides whether a parcel may take a requested status and
// produces the change record the audit log is built from.
package services
