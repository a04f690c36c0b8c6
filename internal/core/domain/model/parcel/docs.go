// Package parcel contains the Parcel aggregate: the current state of a
// shipped parcel as tracked across third-party distributors.
//
// A parcel's status and classification code only change together, through
// ChangeStatus. The surrounding transition workflow (validating the new
// status against the distributor's registry and recording the audit entry)
// lives in the domain services and application layers; the aggregate itself
// guarantees that status, classification code and the change timestamp are
// always written as one unit.
package parcel
