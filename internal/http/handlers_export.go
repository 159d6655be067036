package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/keyhaven/crm-ui-api/internal/csvexport"
	"github.com/keyhaven/crm-ui-api/internal/service"
)

// ExportHandlers serves CSV downloads of the admin directories. Each report
// type has a fixed column set; the exporters are compiled at construction so
// bad expressions fail at startup.
type ExportHandlers struct {
	svc       *service.DirectoryService
	logger    *slog.Logger
	customers *csvexport.Exporter
	leads     *csvexport.Exporter
	followUps *csvexport.Exporter
	now       func() time.Time
}

// NewExportHandlers builds the CSV exporters for every report type.
func NewExportHandlers(svc *service.DirectoryService, logger *slog.Logger) (*ExportHandlers, error) {
	if logger == nil {
		logger = slog.Default()
	}

	customers, err := csvexport.New([]csvexport.Column{
		{Label: "Name", Expr: "name"},
		{Label: "Mobile", Expr: "mobile"},
		{Label: "Email", Expr: "email"},
		{Label: "Requirement", Expr: "requirement"},
		{Label: "Assigned Agent", Expr: "assignedAgent"},
		{Label: "Follow-up Status", Expr: "followUpStatus"},
		{Label: "Created At", Expr: "createdAt"},
	})
	if err != nil {
		return nil, fmt.Errorf("customers exporter: %w", err)
	}

	leads, err := csvexport.New([]csvexport.Column{
		{Label: "Name", Expr: "name"},
		{Label: "Mobile", Expr: "mobile"},
		{Label: "Email", Expr: "email"},
		{Label: "Status", Expr: "status"},
		{Label: "Requirement", Expr: "requirement"},
		{Label: "Assigned Agent", Expr: "assignedAgent"},
		{Label: "Description", Expr: "description"},
		{Label: "Remarks", Expr: "remarks"},
		{Label: "Created At", Expr: "createdAt"},
	})
	if err != nil {
		return nil, fmt.Errorf("leads exporter: %w", err)
	}

	followUps, err := csvexport.New([]csvexport.Column{
		{Label: "Linked ID", Expr: "linkedId"},
		{Label: "Type", Expr: "type"},
		{Label: "Agent", Expr: "agent"},
		{Label: "Follow-up Time", Expr: "followUpTime"},
		{Label: "Remarks", Expr: "remarks"},
		{Label: "Status", Expr: "status"},
		{Label: "Created At", Expr: "createdAt"},
	})
	if err != nil {
		return nil, fmt.Errorf("follow-ups exporter: %w", err)
	}

	return &ExportHandlers{
		svc:       svc,
		logger:    logger,
		customers: customers,
		leads:     leads,
		followUps: followUps,
		now:       time.Now,
	}, nil
}

// Customers downloads the customer directory as CSV.
// GET /api/admin/export/customers.
func (h *ExportHandlers) Customers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Customers(r.Context(), CallerPrincipal(r.Context()), true)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	h.serve(w, r, h.customers, "customers", rows)
}

// Leads downloads the lead directory as CSV.
// GET /api/admin/export/leads.
func (h *ExportHandlers) Leads(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Leads(r.Context(), CallerPrincipal(r.Context()), true)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	h.serve(w, r, h.leads, "leads", rows)
}

// FollowUps downloads the follow-up directory as CSV.
// GET /api/admin/export/followups.
func (h *ExportHandlers) FollowUps(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.FollowUps(r.Context(), CallerPrincipal(r.Context()), true)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	h.serve(w, r, h.followUps, "followups", rows)
}

// serve writes rows as a CSV attachment. Export errors after the header has
// been committed can only be logged.
func (h *ExportHandlers) serve(
	w http.ResponseWriter, r *http.Request,
	exporter *csvexport.Exporter, reportType string, rows any,
) {
	filename := csvexport.Filename(reportType, h.now().UTC())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := exporter.Write(w, rows, true); err != nil {
		h.logger.ErrorContext(r.Context(), "csv export failed",
			"report", reportType, "error", err)
	}
}
