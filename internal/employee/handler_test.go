package employee_test

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
	"hrportal/internal/employee"
)

var _ = Describe("Employee Handler", func() {
	var (
		service *employee.Service
		handler *employee.Handler
	)

	BeforeEach(func() {
		mockRepo := NewMockRepository()
		hasher := &MockHasher{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, hasher, logger)
		handler = employee.NewHandler(service)

		_, err := service.Register(validRegisterDTO())
		Expect(err).NotTo(HaveOccurred())

		other := validRegisterDTO()
		other.ID = 987654321
		other.Email = "john.doe@example.com"
		other.FirstName = "John"
		_, err = service.Register(other)
		Expect(err).NotTo(HaveOccurred())
	})

	authedRequest := func(method, target string, body []byte, employeeID int64) *http.Request {
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		return req.WithContext(internal.ContextWithAuth(req.Context(), internal.AuthContext{
			EmployeeID: employeeID,
		}))
	}

	Describe("GetMe", func() {
		It("should return the caller's own record", func() {
			req := authedRequest(http.MethodGet, "/employees/me", nil, 123456789)
			w := httptest.NewRecorder()

			handler.GetMe(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&emp)).To(Succeed())
			Expect(emp.ID).To(Equal(int64(123456789)))
			Expect(emp.FirstName).To(Equal("Jane"))
		})

		It("should never leak another employee's record", func() {
			req := authedRequest(http.MethodGet, "/employees/me", nil, 987654321)
			w := httptest.NewRecorder()

			handler.GetMe(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var emp employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&emp)).To(Succeed())
			Expect(emp.ID).To(Equal(int64(987654321)))
			Expect(emp.FirstName).To(Equal("John"))
		})

		It("should return 401 without a session", func() {
			req := httptest.NewRequest(http.MethodGet, "/employees/me", nil)
			w := httptest.NewRecorder()

			handler.GetMe(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should not include credential material in the response", func() {
			req := authedRequest(http.MethodGet, "/employees/me", nil, 123456789)
			w := httptest.NewRecorder()

			handler.GetMe(w, req)

			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
			Expect(w.Body.String()).NotTo(ContainSubstring("hash"))
		})
	})

	Describe("UpdateMe", func() {
		It("should update the caller's own record only", func() {
			dto := validUpdateDTO()
			dto.City = "Eugene"
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			req := authedRequest(http.MethodPut, "/employees/me", body, 123456789)
			w := httptest.NewRecorder()

			handler.UpdateMe(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			updated, err := service.GetByID(123456789)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.City).To(Equal("Eugene"))

			untouched, err := service.GetByID(987654321)
			Expect(err).NotTo(HaveOccurred())
			Expect(untouched.City).To(Equal("Portland"))
		})

		It("should reject an email already owned by someone else", func() {
			dto := validUpdateDTO()
			dto.Email = "john.doe@example.com"
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			req := authedRequest(http.MethodPut, "/employees/me", body, 123456789)
			w := httptest.NewRecorder()

			handler.UpdateMe(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Email is already in use."))
		})
	})

	Describe("Register", func() {
		It("should return 201 with the flash message", func() {
			dto := validRegisterDTO()
			dto.ID = 555555555
			dto.Email = "new.hire@example.com"
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Body.String()).To(ContainSubstring("You have successfully registered the employee."))
		})

		It("should return 400 for a duplicate employee ID", func() {
			dto := validRegisterDTO()
			dto.Email = "unused@example.com"
			body, err := json.Marshal(dto)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/admin/employees", bytes.NewReader(body))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(w.Body.String()).To(ContainSubstring("Employee ID is already in use."))
		})
	})

	Describe("ListPersonalInfo", func() {
		It("should list all employees", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/personalinfos", nil)
			w := httptest.NewRecorder()

			handler.ListPersonalInfo(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var response struct {
				Employees []*employee.Employee `json:"employees"`
			}
			Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
			Expect(response.Employees).To(HaveLen(2))
		})
	})
})
