package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"hrportal/internal"
	"hrportal/internal/transport"
	"hrportal/pkg/logger"
)

type ServiceAPI interface {
	Create(dto PayrollDTO) (*Payroll, error)
	CreateForEmployee(employeeID int64, dto PayrollDTO) (*Payroll, error)
	GetAll() ([]*Payroll, error)
	GetForEmployee(employeeID int64) ([]*Payroll, error)
	Update(id int64, dto PayrollDTO) (*Payroll, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// ListPayrolls lists payroll info for all employees (admin scope).
func (h *Handler) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	payrolls, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payrolls": payrolls,
	})
}

// AddPayroll creates payroll info for the employee named in the body (admin scope).
func (h *Handler) AddPayroll(w http.ResponseWriter, r *http.Request) {
	var dto PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "You have successfully added new payroll info.",
		"payroll": p,
	})
}

// EditPayroll updates payroll info by primary key (admin scope).
func (h *Handler) EditPayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	var dto PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "You have successfully edited the payroll info.",
		"payroll": p,
	})
}

// DeletePayroll removes payroll info by primary key (admin scope).
func (h *Handler) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid payroll ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "You have successfully deleted the payroll info.",
	})
}

// ListMyPayrolls lists only the caller's payroll info. The query is filtered
// by the session identity; no identifier is read from the request.
func (h *Handler) ListMyPayrolls(w http.ResponseWriter, r *http.Request) {
	ac, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payrolls, err := h.Service.GetForEmployee(ac.EmployeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payrolls": payrolls,
	})
}

// AddMyPayroll creates the caller's own payroll info, forcing ownership to
// the session identity regardless of the payload.
func (h *Handler) AddMyPayroll(w http.ResponseWriter, r *http.Request) {
	ac, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto PayrollDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.Service.CreateForEmployee(ac.EmployeeID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "You have successfully added new payroll info.",
		"payroll": p,
	})
}
