package employee

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
	Register(dto RegisterEmployeeDTO) (*Employee, error)
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	UpdatePersonalInfo(id int64, dto UpdatePersonalInfoDTO) (*Employee, error)
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

// Register handles admin-initiated employee creation.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.Register(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "You have successfully registered the employee.",
		"employee": emp,
	})
}

// ListPersonalInfo lists all employees (admin scope).
func (h *Handler) ListPersonalInfo(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetAll()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"employees": employees,
	})
}

// UpdatePersonalInfo edits any employee's personal info by path ID (admin scope).
func (h *Handler) UpdatePersonalInfo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	var dto UpdatePersonalInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdatePersonalInfo(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "You have successfully edited the employee.",
		"employee": emp,
	})
}

// GetMe returns the caller's own record. The lookup is keyed by the session
// identity only.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ac, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	emp, err := h.Service.GetByID(ac.EmployeeID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

// UpdateMe edits the caller's own personal info.
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ac, ok := internal.AuthFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdatePersonalInfoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	emp, err := h.Service.UpdatePersonalInfo(ac.EmployeeID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "You have successfully edited your personal info.",
		"employee": emp,
	})
}
