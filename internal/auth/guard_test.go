package auth_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hrportal/internal"
	"hrportal/internal/auth"
)

var _ = Describe("Admin Guard", func() {
	var (
		guard   *auth.Guard
		handler http.Handler
		called  bool
	)

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		guard = auth.NewGuard(logger)
		called = false
		handler = guard.RequireAdmin()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		}))
	})

	requestAs := func(ac internal.AuthContext) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/payrolls", nil)
		req = req.WithContext(internal.ContextWithAuth(req.Context(), ac))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	Context("when the caller is an admin", func() {
		It("should pass the request through", func() {
			rec := requestAs(internal.AuthContext{EmployeeID: 1, IsAdmin: true})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})
	})

	Context("when the caller is not an admin", func() {
		It("should abort with 403 before the handler runs", func() {
			rec := requestAs(internal.AuthContext{EmployeeID: 1111, IsAdmin: false})
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(called).To(BeFalse())
		})
	})

	Context("when no auth context is present", func() {
		It("should abort with 401", func() {
			req := httptest.NewRequest(http.MethodGet, "/admin/payrolls", nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(called).To(BeFalse())
		})
	})
})
