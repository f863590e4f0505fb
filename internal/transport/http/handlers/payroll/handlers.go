package payrollhandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"paycalc/internal/domain/auth"
	"paycalc/internal/domain/payroll"
	"paycalc/internal/domain/reports"
	"paycalc/internal/platform/logger"
	"paycalc/internal/platform/metrics"
	"paycalc/internal/transport/http/api"
	"paycalc/internal/transport/http/middleware"
	"paycalc/internal/transport/http/shared"
)

type Handler struct {
	Log           *logger.Logger
	Metrics       *metrics.Collector
	MaxRosterSize int
	ReportTitle   string
	EnforceAuth   bool
	Now           func() time.Time
}

func NewHandler(log *logger.Logger, collector *metrics.Collector, maxRosterSize int, reportTitle string, enforceAuth bool) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		Log:           log,
		Metrics:       collector,
		MaxRosterSize: maxRosterSize,
		ReportTitle:   reportTitle,
		EnforceAuth:   enforceAuth,
		Now:           time.Now,
	}
}

type rosterPayload struct {
	Employees []payroll.Record `json:"employees"`
}

type Category struct {
	Kind   payroll.Kind `json:"kind"`
	Label  string       `json:"label"`
	Fields []string     `json:"fields"`
}

type EmployeeSummary struct {
	reports.Line
	Text string `json:"text"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	report := middleware.RequirePermission(auth.PermPayrollReport, h.EnforceAuth)
	export := middleware.RequirePermission(auth.PermPayrollExport, h.EnforceAuth)
	r.Route("/payroll", func(r chi.Router) {
		r.With(report).Get("/categories", h.handleListCategories)
		r.With(report).Post("/report", h.handleReport)
		r.With(report).Post("/report.txt", h.handleReportText)
		r.With(export).Post("/report.pdf", h.handleReportPDF)
		r.With(report).Post("/employees/summary", h.handleEmployeeSummary)
	})
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories := make([]Category, 0, len(payroll.Kinds))
	for _, kind := range payroll.Kinds {
		categories = append(categories, Category{Kind: kind, Label: kind.Label(), Fields: payroll.Fields[kind]})
	}
	api.Success(w, categories, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	employees, ok := h.decodeRoster(w, r)
	if !ok {
		return
	}
	summary := reports.Summarize(employees)
	h.recordReport(summary.EmployeeCount, summary.GrandTotal)
	api.Success(w, summary, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleReportText(w http.ResponseWriter, r *http.Request) {
	employees, ok := h.decodeRoster(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	total, err := reports.NewReporter(&buf).RenderRoster(employees)
	if err != nil {
		h.Log.Error("render roster failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "payroll_report_failed", "failed to render report", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordReport(len(employees), total)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	employees, ok := h.decodeRoster(w, r)
	if !ok {
		return
	}
	now := h.Now()
	summary := reports.Summarize(employees)
	var buf bytes.Buffer
	if err := reports.WritePDF(&buf, summary, reports.PDFOptions{Title: h.ReportTitle, GeneratedAt: now}); err != nil {
		h.Log.Error("render pdf failed", "err", err, "requestId", middleware.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "payroll_pdf_failed", "failed to render pdf", middleware.GetRequestID(r.Context()))
		return
	}
	h.recordReport(summary.EmployeeCount, summary.GrandTotal)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll-%s.pdf", now.Format("20060102")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) handleEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	var record payroll.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		failDecode(w, err, requestID)
		return
	}
	v := shared.NewValidator()
	v.Record("", record)
	if v.Reject(w, requestID) {
		return
	}
	employee, err := record.Employee()
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return
	}
	var buf bytes.Buffer
	if err := reports.NewReporter(&buf).RenderIndividual(employee); err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_report_failed", "failed to render summary", requestID)
		return
	}
	api.Success(w, EmployeeSummary{Line: reports.LineOf(employee), Text: buf.String()}, requestID)
}

func (h *Handler) decodeRoster(w http.ResponseWriter, r *http.Request) ([]payroll.Employee, bool) {
	requestID := middleware.GetRequestID(r.Context())
	var payload rosterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		failDecode(w, err, requestID)
		return nil, false
	}
	v := shared.NewValidator()
	v.Roster("employees", payload.Employees, h.MaxRosterSize)
	if v.Reject(w, requestID) {
		return nil, false
	}
	roster, err := payroll.BuildRoster(payload.Employees)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
		return nil, false
	}
	return roster.Employees(), true
}

func failDecode(w http.ResponseWriter, err error, requestID string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
		return
	}
	api.Fail(w, http.StatusBadRequest, "invalid_json", "invalid json payload", requestID)
}

func (h *Handler) recordReport(employees int, total float64) {
	if h.Metrics != nil {
		h.Metrics.RecordReport(employees, total)
	}
}
