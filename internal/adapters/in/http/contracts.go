package http

import "time"

// Wire contracts for the HTTP API. Field names on parcel operations follow
// the upload format used by distributor integrations, which capitalizes
// column names.

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// UpdateParcelRequest carries a single status transition.
// Comments are optional; omitting them keeps the stored comments.
type UpdateParcelRequest struct {
	Status   string  `json:"Status"`
	Comments *string `json:"Comments,omitempty"`
}

// ImportParcelsRequest carries a bulk status upload as a base64 encoded CSV
// document with at least ID and Status columns.
type ImportParcelsRequest struct {
	CSVContent string `json:"csvContent"`
}

// ImportSkippedRow reports one upload row that was not applied.
type ImportSkippedRow struct {
	ParcelID string `json:"parcel_id"`
	Reason   string `json:"reason"`
}

// ImportParcelsResponse summarizes a bulk upload. UpdatedParcels is the
// number of rows applied, not a list of identifiers.
type ImportParcelsResponse struct {
	Message        string             `json:"message"`
	UpdatedParcels int                `json:"updated_parcels"`
	Skipped        []ImportSkippedRow `json:"skipped,omitempty"`
}

// ParcelResponse represents one tracked parcel.
type ParcelResponse struct {
	ID                 string    `json:"id"`
	Distributor        string    `json:"distributor"`
	Status             string    `json:"status"`
	ClassificationCode string    `json:"classification_code"`
	Comments           string    `json:"comments,omitempty"`
	Site               string    `json:"site,omitempty"`
	StatusChangedAt    time.Time `json:"status_changed_at"`
}

// AuditEntryResponse represents one recorded status transition.
type AuditEntryResponse struct {
	ID                    string    `json:"id"`
	OldStatus             string    `json:"old_status"`
	NewStatus             string    `json:"new_status"`
	OldClassificationCode string    `json:"old_classification_code"`
	NewClassificationCode string    `json:"new_classification_code"`
	ChangedAt             time.Time `json:"changed_at"`
}

// StatusResponse represents one registry entry.
type StatusResponse struct {
	ID                 string `json:"id"`
	Distributor        string `json:"distributor,omitempty"`
	Name               string `json:"name"`
	ClassificationCode string `json:"classification_code"`
	Active             *bool  `json:"active,omitempty"`
}

// NewStatusRequest registers a status for a distributor.
type NewStatusRequest struct {
	Distributor        string `json:"distributor"`
	Name               string `json:"name"`
	ClassificationCode string `json:"classification_code"`
}

// UpdateStatusRequest edits a registry entry's name, classification code or
// active flag. Omitting active keeps the stored flag; sending true brings a
// deactivated entry back into use.
type UpdateStatusRequest struct {
	Name               string `json:"name"`
	ClassificationCode string `json:"classification_code"`
	Active             *bool  `json:"active,omitempty"`
}

// StatusSummaryRow is one row of the status summary report.
type StatusSummaryRow struct {
	Status          string `json:"status"`
	Distributor     string `json:"distributor"`
	CodeDescription string `json:"code_description"`
	Count           int64  `json:"count"`
}

// SiteCountRow is one row of the lost, held and pickup/dropoff reports.
type SiteCountRow struct {
	Distributor string `json:"distributor"`
	Site        string `json:"site"`
	Count       int64  `json:"count"`
}
