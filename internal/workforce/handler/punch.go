package handler

import (
	"net/http"
	"time"

	"github.com/fixpoint/fixpoint-backend/internal/workforce/domain"
	"github.com/fixpoint/fixpoint-backend/internal/workforce/service"
	"github.com/fixpoint/fixpoint-backend/pkg/errors"
	"github.com/fixpoint/fixpoint-backend/pkg/httputil"
	"github.com/fixpoint/fixpoint-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// PunchHandler handles punch endpoints
type PunchHandler struct {
	service *service.PunchService
	monitor *service.ActiveSessionMonitor
	logger  *logger.Logger
}

// NewPunchHandler creates a new punch handler
func NewPunchHandler(svc *service.PunchService, monitor *service.ActiveSessionMonitor, log *logger.Logger) *PunchHandler {
	return &PunchHandler{
		service: svc,
		monitor: monitor,
		logger:  log,
	}
}

// List returns punches in a time window, newest first.
// GET /punches?employee_id=&from=&to=
// Without bounds the current Sunday-start week is used.
func (h *PunchHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.PunchQuery{
		EmployeeID: r.URL.Query().Get("employee_id"),
	}

	from, to, err := parseWindow(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}
	q.From, q.To = from, to

	punches, err := h.service.QueryPunches(r.Context(), q)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, punches)
}

// WeeklySummary returns per-week punch totals for a time window, newest
// week first.
// GET /punches/weekly-summary?employee_id=&from=&to=
func (h *PunchHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	summaries, err := h.service.WeeklySummary(r.Context(), r.URL.Query().Get("employee_id"), from, to)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, summaries)
}

// Payroll returns estimated pay per employee for a time window.
// GET /punches/payroll?from=&to=
func (h *PunchHandler) Payroll(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseWindow(r)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	lines, err := h.service.Payroll(r.Context(), from, to)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, lines)
}

// ActiveSessions returns the monitor's snapshot of who is clocked in.
// GET /punches/active
func (h *PunchHandler) ActiveSessions(w http.ResponseWriter, r *http.Request) {
	httputil.JSON(w, http.StatusOK, h.monitor.Snapshot())
}

// Correct applies a manual correction to a punch.
// PATCH /punches/{id}
// clock_out null or absent clears the clock-out and reopens the session.
func (h *PunchHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		ClockIn  *string `json:"clock_in"`
		ClockOut *string `json:"clock_out"`
		Note     string  `json:"note"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}

	in := service.CorrectionInput{
		PunchID: id,
		Note:    req.Note,
	}

	if req.ClockIn != nil {
		clockIn, err := time.Parse(time.RFC3339, *req.ClockIn)
		if err != nil {
			httputil.Error(w, errors.BadRequest("invalid clock_in format"))
			return
		}
		in.ClockIn = clockIn
	}
	if req.ClockOut != nil {
		clockOut, err := time.Parse(time.RFC3339, *req.ClockOut)
		if err != nil {
			httputil.Error(w, errors.BadRequest("invalid clock_out format"))
			return
		}
		in.ClockOut = &clockOut
	}

	result, err := h.service.CorrectPunch(r.Context(), in)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	if result.AuditStatus == domain.AuditStatusLost {
		httputil.JSONWithWarnings(w, http.StatusOK, result,
			[]string{"correction applied but no audit trail could be written"})
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// ClockInRequest is the body for opening a punch
type ClockInRequest struct {
	EmployeeID   string `json:"employee_id" validate:"required"`
	EmployeeName string `json:"employee_name" validate:"required"`
}

// ClockIn opens a new punch for an employee.
// POST /punches/clock-in
func (h *PunchHandler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockInRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.Error(w, err)
		return
	}
	if err := httputil.Validate(req); err != nil {
		httputil.Error(w, err)
		return
	}

	punch, err := h.service.ClockIn(r.Context(), req.EmployeeID, req.EmployeeName)
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.Created(w, punch)
}

// ClockOut closes the employee's most recent open punch.
// POST /employees/{id}/clock-out
func (h *PunchHandler) ClockOut(w http.ResponseWriter, r *http.Request) {
	punch, err := h.service.ClockOut(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.Error(w, err)
		return
	}

	httputil.JSON(w, http.StatusOK, punch)
}

// parseWindow reads optional from/to query bounds. Both absent falls back to
// the current Sunday-start week.
func parseWindow(r *http.Request) (*time.Time, *time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" && toStr == "" {
		from, to := service.ThisWeek(time.Now())
		return &from, &to, nil
	}

	var from, to *time.Time
	if fromStr != "" {
		t, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return nil, nil, errors.BadRequest("invalid from format, expected RFC3339")
		}
		from = &t
	}
	if toStr != "" {
		t, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			return nil, nil, errors.BadRequest("invalid to format, expected RFC3339")
		}
		to = &t
	}
	return from, to, nil
}
