// Package audit contains the audit Entry: the immutable record of a single
// parcel status transition.
//
// Entries are append-only. They are written exactly once per successful
// transition and are never updated or deleted; the type deliberately has no
// mutators.
package audit
