package compensation_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hrportal/internal"
	"hrportal/internal/compensation"
)

var _ = Describe("Compensation Handler", func() {
	var handler *compensation.Handler

	BeforeEach(func() {
		mockRepo := NewMockRepository()
		lookup := &MockEmployeeLookup{known: map[int64]bool{1111: true, 2222: true}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := compensation.NewService(mockRepo, lookup, logger)
		handler = compensation.NewHandler(service)

		_, err := service.Create(validCompensationDTO(1111))
		Expect(err).NotTo(HaveOccurred())
		_, err = service.Create(validCompensationDTO(2222))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("ListMyCompensations", func() {
		It("should return only the caller's history", func() {
			req := httptest.NewRequest(http.MethodGet, "/compensations", nil)
			req = req.WithContext(internal.ContextWithAuth(req.Context(), internal.AuthContext{EmployeeID: 1111}))
			w := httptest.NewRecorder()

			handler.ListMyCompensations(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Compensations []*compensation.Compensation `json:"compensations"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Compensations).To(HaveLen(1))
			Expect(response.Compensations[0].EmployeeID).To(Equal(int64(1111)))
		})

		It("should return 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/compensations", nil)
			w := httptest.NewRecorder()

			handler.ListMyCompensations(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("ListCompensations", func() {
		It("should list the employee named in the path", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/employees/2222/compensations", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("employeeID", "2222")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ListCompensations(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Compensations []*compensation.Compensation `json:"compensations"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Compensations).To(HaveLen(1))
			Expect(response.Compensations[0].EmployeeID).To(Equal(int64(2222)))
		})

		It("should return 400 for a non-numeric employee ID", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/employees/abc/compensations", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("employeeID", "abc")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ListCompensations(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
