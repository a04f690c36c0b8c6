// Package http exposes the service over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultOverdueHours = 48

// Server handles HTTP requests for the parcel tracking API.
type Server struct {
	// Command handlers
	updateParcelHandler     commands.UpdateParcelStatusCommandHandler
	importParcelsHandler    commands.ImportParcelStatusesCommandHandler
	addStatusHandler        commands.AddStatusCommandHandler
	updateStatusHandler     commands.UpdateStatusCommandHandler
	deactivateStatusHandler commands.DeactivateStatusCommandHandler

	// Query handlers
	getParcelsHandler        queries.GetParcelsQueryHandler
	getOverdueParcelsHandler queries.GetOverdueParcelsQueryHandler
	getParcelHistoryHandler  queries.GetParcelHistoryQueryHandler
	getActiveStatusesHandler queries.GetActiveStatusesQueryHandler
	getStatusesHandler       queries.GetStatusesQueryHandler
	statusSummaryHandler     queries.StatusSummaryReportQueryHandler
	lostParcelsHandler       queries.LostParcelsReportQueryHandler
	heldParcelsHandler       queries.HeldParcelsReportQueryHandler
	pickupDropoffHandler     queries.PickupDropoffReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	updateParcelHandler commands.UpdateParcelStatusCommandHandler,
	importParcelsHandler commands.ImportParcelStatusesCommandHandler,
	addStatusHandler commands.AddStatusCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	deactivateStatusHandler commands.DeactivateStatusCommandHandler,
	getParcelsHandler queries.GetParcelsQueryHandler,
	getOverdueParcelsHandler queries.GetOverdueParcelsQueryHandler,
	getParcelHistoryHandler queries.GetParcelHistoryQueryHandler,
	getActiveStatusesHandler queries.GetActiveStatusesQueryHandler,
	getStatusesHandler queries.GetStatusesQueryHandler,
	statusSummaryHandler queries.StatusSummaryReportQueryHandler,
	lostParcelsHandler queries.LostParcelsReportQueryHandler,
	heldParcelsHandler queries.HeldParcelsReportQueryHandler,
	pickupDropoffHandler queries.PickupDropoffReportQueryHandler,
) *Server {
	return &Server{
		updateParcelHandler:      updateParcelHandler,
		importParcelsHandler:     importParcelsHandler,
		addStatusHandler:         addStatusHandler,
		updateStatusHandler:      updateStatusHandler,
		deactivateStatusHandler:  deactivateStatusHandler,
		getParcelsHandler:        getParcelsHandler,
		getOverdueParcelsHandler: getOverdueParcelsHandler,
		getParcelHistoryHandler:  getParcelHistoryHandler,
		getActiveStatusesHandler: getActiveStatusesHandler,
		getStatusesHandler:       getStatusesHandler,
		statusSummaryHandler:     statusSummaryHandler,
		lostParcelsHandler:       lostParcelsHandler,
		heldParcelsHandler:       heldParcelsHandler,
		pickupDropoffHandler:     pickupDropoffHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/parcels", s.GetParcels)
	api.GET("/parcels/overdue", s.GetOverdueParcels)
	api.POST("/parcels/import", s.ImportParcels)
	api.PATCH("/parcels/:parcelID", s.UpdateParcel)
	api.GET("/parcels/:parcelID/history", s.GetParcelHistory)

	api.GET("/distributors/:distributor/statuses", s.GetDistributorStatuses)

	api.GET("/statuses", s.GetStatuses)
	api.POST("/statuses", s.CreateStatus)
	api.PATCH("/statuses/:statusID", s.UpdateStatus)
	api.PATCH("/statuses/:statusID/deactivate", s.DeactivateStatus)

	api.GET("/reports/status-summary", s.GetStatusSummaryReport)
	api.GET("/reports/lost", s.GetLostParcelsReport)
	api.GET("/reports/held", s.GetHeldParcelsReport)
	api.GET("/reports/pickup-dropoff", s.GetPickupDropoffReport)
}

// GetParcels handles GET /api/v1/parcels - lists tracked parcels.
// An optional distributor query parameter narrows the listing.
func (s *Server) GetParcels(ctx echo.Context) error {
	query := queries.NewGetParcelsQuery(ctx.QueryParam("distributor"))

	parcels, err := s.getParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:                 p.ID,
			Distributor:        p.Distributor,
			Status:             p.Status,
			ClassificationCode: p.ClassificationCode,
			Comments:           p.Comments,
			Site:               p.Site,
			StatusChangedAt:    p.StatusChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOverdueParcels handles GET /api/v1/parcels/overdue - lists parcels with
// no status change past the threshold. The hours query parameter overrides
// the default threshold of 48 hours.
func (s *Server) GetOverdueParcels(ctx echo.Context) error {
	hours := defaultOverdueHours
	if raw := ctx.QueryParam("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return writeStatus(ctx, http.StatusBadRequest, "hours must be a positive integer")
		}
		hours = parsed
	}

	query, err := queries.NewGetOverdueParcelsQuery(time.Duration(hours) * time.Hour)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	parcels, err := s.getOverdueParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, p := range parcels {
		response[i] = ParcelResponse{
			ID:                 p.ID,
			Distributor:        p.Distributor,
			Status:             p.Status,
			ClassificationCode: p.ClassificationCode,
			Site:               p.Site,
			StatusChangedAt:    p.StatusChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateParcel handles PATCH /api/v1/parcels/:parcelID - moves a parcel to a
// new status, recording the transition in the audit ledger.
func (s *Server) UpdateParcel(ctx echo.Context) error {
	var request UpdateParcelRequest
	if err := ctx.Bind(&request); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(
		ctx.Param("parcelID"), request.Status, request.Comments)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ParcelResponse{
		ID:                 updated.ID(),
		Distributor:        updated.Distributor(),
		Status:             updated.Status(),
		ClassificationCode: updated.ClassificationCode(),
		Comments:           updated.Comments(),
		Site:               updated.Site(),
		StatusChangedAt:    updated.StatusChangedAt(),
	})
}

// ImportParcels handles POST /api/v1/parcels/import - applies a bulk status
// upload. Rows that cannot be applied are reported, not fatal.
func (s *Server) ImportParcels(ctx echo.Context) error {
	var request ImportParcelsRequest
	if err := ctx.Bind(&request); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	rows, err := decodeCSVRows(request.CSVContent)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewImportParcelStatusesCommand(rows)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.importParcelsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	skipped := make([]ImportSkippedRow, len(result.Skipped))
	for i, row := range result.Skipped {
		skipped[i] = ImportSkippedRow{ParcelID: row.ParcelID, Reason: row.Reason}
	}

	return ctx.JSON(http.StatusOK, ImportParcelsResponse{
		Message:        "Parcels updated successfully",
		UpdatedParcels: len(result.Updated),
		Skipped:        skipped,
	})
}

// GetParcelHistory handles GET /api/v1/parcels/:parcelID/history - returns
// the parcel's audit trail in chronological order.
func (s *Server) GetParcelHistory(ctx echo.Context) error {
	query, err := queries.NewGetParcelHistoryQuery(ctx.Param("parcelID"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	history, err := s.getParcelHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]AuditEntryResponse, len(history))
	for i, change := range history {
		response[i] = AuditEntryResponse{
			ID:                    change.ID.String(),
			OldStatus:             change.OldStatus,
			NewStatus:             change.NewStatus,
			OldClassificationCode: change.OldClassificationCode,
			NewClassificationCode: change.NewClassificationCode,
			ChangedAt:             change.ChangedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDistributorStatuses handles GET /api/v1/distributors/:distributor/statuses -
// lists the statuses a distributor's parcels may transition to.
func (s *Server) GetDistributorStatuses(ctx echo.Context) error {
	query, err := queries.NewGetActiveStatusesQuery(ctx.Param("distributor"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	statuses, err := s.getActiveStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusResponse, len(statuses))
	for i, entry := range statuses {
		response[i] = StatusResponse{
			ID:                 entry.ID.String(),
			Name:               entry.Name,
			ClassificationCode: entry.ClassificationCode,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStatuses handles GET /api/v1/statuses - lists the full registry,
// including deactivated entries, for administration.
func (s *Server) GetStatuses(ctx echo.Context) error {
	query := queries.NewGetStatusesQuery()

	statuses, err := s.getStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusResponse, len(statuses))
	for i, entry := range statuses {
		active := entry.Active
		response[i] = StatusResponse{
			ID:                 entry.ID.String(),
			Distributor:        entry.Distributor,
			Name:               entry.Name,
			ClassificationCode: entry.ClassificationCode,
			Active:             &active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStatus handles POST /api/v1/statuses - registers a new status.
func (s *Server) CreateStatus(ctx echo.Context) error {
	var request NewStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddStatusCommand(
		request.Distributor, request.Name, request.ClassificationCode)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.addStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, StatusResponse{
		ID:                 cmd.StatusID().String(),
		Distributor:        cmd.Distributor(),
		Name:               cmd.Name(),
		ClassificationCode: cmd.ClassificationCode(),
	})
}

// UpdateStatus handles PATCH /api/v1/statuses/:statusID - edits a registry entry.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	statusID, err := kernel.UUIDFromString(ctx.Param("statusID"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid status ID")
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateStatusCommand(
		statusID, request.Name, request.ClassificationCode, request.Active)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateStatus handles PATCH /api/v1/statuses/:statusID/deactivate -
// retires a registry entry. Deactivating an inactive entry succeeds.
func (s *Server) DeactivateStatus(ctx echo.Context) error {
	statusID, err := kernel.UUIDFromString(ctx.Param("statusID"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, "Invalid status ID")
	}

	cmd, err := commands.NewDeactivateStatusCommand(statusID)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.deactivateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStatusSummaryReport handles GET /api/v1/reports/status-summary.
// Supports from/to date bounds and a comma separated distributors filter.
func (s *Server) GetStatusSummaryReport(ctx echo.Context) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	query := queries.NewStatusSummaryReportQuery(from, to, parseListParam(ctx, "distributors"))

	summary, err := s.statusSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StatusSummaryRow, len(summary))
	for i, row := range summary {
		response[i] = StatusSummaryRow{
			Status:          row.Status,
			Distributor:     row.Distributor,
			CodeDescription: row.CodeDescription,
			Count:           row.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLostParcelsReport handles GET /api/v1/reports/lost.
// The status query parameter names the lost status, defaulting to "Lost".
func (s *Server) GetLostParcelsReport(ctx echo.Context) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	status := ctx.QueryParam("status")
	if status == "" {
		status = "Lost"
	}

	query, err := queries.NewLostParcelsReportQuery(
		status, from, to, parseListParam(ctx, "distributors"), parseListParam(ctx, "sites"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := s.lostParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SiteCountRow, len(report))
	for i, row := range report {
		response[i] = SiteCountRow{Distributor: row.Distributor, Site: row.Site, Count: row.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetHeldParcelsReport handles GET /api/v1/reports/held.
// The codes query parameter lists the held classification codes.
func (s *Server) GetHeldParcelsReport(ctx echo.Context) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewHeldParcelsReportQuery(
		parseListParam(ctx, "codes"), from, to,
		parseListParam(ctx, "distributors"), parseListParam(ctx, "sites"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := s.heldParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SiteCountRow, len(report))
	for i, row := range report {
		response[i] = SiteCountRow{Distributor: row.Distributor, Site: row.Site, Count: row.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupDropoffReport handles GET /api/v1/reports/pickup-dropoff.
// Reports held parcels stale for more than a week, within an optional
// date range.
func (s *Server) GetPickupDropoffReport(ctx echo.Context) error {
	from, to, err := parseDateRange(ctx)
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewPickupDropoffReportQuery(
		parseListParam(ctx, "codes"), from, to,
		parseListParam(ctx, "distributors"),
		parseListParam(ctx, "sites"))
	if err != nil {
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	}

	report, err := s.pickupDropoffHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SiteCountRow, len(report))
	for i, row := range report {
		response[i] = SiteCountRow{Distributor: row.Distributor, Site: row.Site, Count: row.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseListParam reads a comma separated query parameter into a slice.
// The literal "all" disables the filter, matching distributor dashboard links.
func parseListParam(ctx echo.Context, name string) []string {
	raw := ctx.QueryParam(name)
	if raw == "" || strings.EqualFold(raw, "all") {
		return nil
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	return values
}

// parseDateRange reads optional from/to query parameters.
// Accepts RFC 3339 timestamps or plain dates; a plain "to" date covers the
// whole day.
func parseDateRange(ctx echo.Context) (time.Time, time.Time, error) {
	from, err := parseDateParam(ctx.QueryParam("from"), false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := parseDateParam(ctx.QueryParam("to"), true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, to, nil
}

func parseDateParam(raw string, endOfDay bool) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.New("dates must be RFC 3339 or YYYY-MM-DD")
	}

	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t.UTC(), nil
}

// writeError maps application errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeStatus(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrStatusNotAllowed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return writeStatus(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeStatus(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func writeStatus(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
