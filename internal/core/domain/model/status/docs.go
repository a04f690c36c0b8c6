// Package status contains the status registry Entry aggregate: the
// per-distributor vocabulary of assignable parcel statuses and the
// classification code each status maps to.
//
// Entries are administered out of band (created, edited, deactivated);
// the transition workflow only reads them. Deactivation is soft so that
// historical audit entries can still be interpreted against retired
// statuses.
package status
