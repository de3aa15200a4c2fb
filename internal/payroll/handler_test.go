package payroll_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hrportal/internal"
	"hrportal/internal/payroll"
)

var _ = Describe("Payroll Handler", func() {
	var handler *payroll.Handler

	BeforeEach(func() {
		mockRepo := NewMockRepository()
		lookup := &MockEmployeeLookup{known: map[int64]bool{1111: true, 2222: true}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := payroll.NewService(mockRepo, lookup, logger)
		handler = payroll.NewHandler(service)

		_, err := service.Create(validPayrollDTO(1111))
		Expect(err).NotTo(HaveOccurred())
		_, err = service.Create(validPayrollDTO(2222))
		Expect(err).NotTo(HaveOccurred())
	})

	authedRequest := func(method, target string, body []byte, employeeID int64) *http.Request {
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		return req.WithContext(internal.ContextWithAuth(req.Context(), internal.AuthContext{
			EmployeeID: employeeID,
		}))
	}

	Describe("ListMyPayrolls", func() {
		It("should return only the caller's records", func() {
			req := authedRequest(http.MethodGet, "/payrolls", nil, 1111)
			w := httptest.NewRecorder()

			handler.ListMyPayrolls(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Payrolls []*payroll.Payroll `json:"payrolls"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Payrolls).To(HaveLen(1))
			Expect(response.Payrolls[0].EmployeeID).To(Equal(int64(1111)))
		})

		It("should return 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/payrolls", nil)
			w := httptest.NewRecorder()

			handler.ListMyPayrolls(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("AddMyPayroll", func() {
		It("should ignore an employee_id in the payload", func() {
			dto := validPayrollDTO(2222)
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			// 3333 has no payroll yet; 2222 already does
			lookup := &MockEmployeeLookup{known: map[int64]bool{3333: true}}
			logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
			freshRepo := NewMockRepository()
			service := payroll.NewService(freshRepo, lookup, logger)
			handler = payroll.NewHandler(service)

			req := authedRequest(http.MethodPost, "/payrolls", body, 3333)
			w := httptest.NewRecorder()

			handler.AddMyPayroll(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))

			var response struct {
				Payroll *payroll.Payroll `json:"payroll"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Payroll.EmployeeID).To(Equal(int64(3333)))
		})

		It("should return 409 when the caller already has payroll info", func() {
			body, err := json.Marshal(validPayrollDTO(0))
			Expect(err).NotTo(HaveOccurred())

			req := authedRequest(http.MethodPost, "/payrolls", body, 1111)
			w := httptest.NewRecorder()

			handler.AddMyPayroll(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("ListPayrolls", func() {
		It("should return every record for admins", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/payrolls", nil)
			w := httptest.NewRecorder()

			handler.ListPayrolls(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Payrolls []*payroll.Payroll `json:"payrolls"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Payrolls).To(HaveLen(2))
		})
	})

	Describe("AddPayroll", func() {
		It("should return field details on validation failure", func() {
			dto := validPayrollDTO(1111)
			dto.AccountNumber = "12"
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/admin/payrolls", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.AddPayroll(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("account_number"))
		})
	})
})
