package compensation

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
	Create(dto CompensationDTO) (*Compensation, error)
	GetForEmployee(employeeID int64) ([]*Compensation, error)
	Update(id int64, dto CompensationDTO) (*Compensation, error)
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

// ListCompensations lists pay-period history for the employee named in the
// path (admin scope; the original admin flow selects an employee first).
func (h *Handler) ListCompensations(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "employeeID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	compensations, err := h.Service.GetForEmployee(employeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"compensations": compensations,
	})
}

// AddCompensation records a pay period for the employee in the body (admin scope).
func (h *Handler) AddCompensation(w http.ResponseWriter, r *http.Request) {
	var dto CompensationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Create(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "You have successfully added new compensation info.",
		"compensation": c,
	})
}

// EditCompensation updates a record by primary key (admin scope).
func (h *Handler) EditCompensation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid compensation ID")
		return
	}

	var dto CompensationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "You have successfully edited the compensation info.",
		"compensation": c,
	})
}

// DeleteCompensation removes a record by primary key (admin scope).
func (h *Handler) DeleteCompensation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid compensation ID")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "You have successfully deleted the compensation info.",
	})
}

// ListMyCompensations lists only the caller's pay-period history, filtered by
// the session identity.
func (h *Handler) ListMyCompensations(w http.ResponseWriter, r *http.Request) {
	ac, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	compensations, err := h.Service.GetForEmployee(ac.EmployeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"compensations": compensations,
	})
}
