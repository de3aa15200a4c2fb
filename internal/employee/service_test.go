package employee_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "hrportal/internal"
	"hrportal/internal/employee"
)

func TestEmployeeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Employee Service Suite")
}

// MockRepository implements employee.Repository for testing
type MockRepository struct {
	employees  map[int64]*employee.Employee
	hashes     map[int64]string
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		employees: make(map[int64]*employee.Employee),
		hashes:    make(map[int64]string),
	}
}

func (m *MockRepository) Create(e *employee.Employee, passwordHash string) error {
	if m.shouldFail {
		return m.failError
	}
	if _, exists := m.employees[e.ID]; exists {
		return apperrors.ErrEmployeeIDTaken
	}
	m.employees[e.ID] = e
	m.hashes[e.ID] = passwordHash
	return nil
}

func (m *MockRepository) GetByID(id int64) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	e, exists := m.employees[id]
	if !exists {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *MockRepository) GetByEmail(email string) (*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, apperrors.ErrEmployeeNotFound
}

func (m *MockRepository) GetAll() ([]*employee.Employee, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*employee.Employee
	for _, e := range m.employees {
		result = append(result, e)
	}
	return result, nil
}

func (m *MockRepository) Update(e *employee.Employee) error {
	if m.shouldFail {
		return m.failError
	}
	m.employees[e.ID] = e
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

// MockHasher implements employee.PasswordHasher for testing
type MockHasher struct {
	hashed []string
}

func (m *MockHasher) HashPassword(password string) (string, error) {
	m.hashed = append(m.hashed, password)
	return "hashed:" + password, nil
}

func validRegisterDTO() employee.RegisterEmployeeDTO {
	return employee.RegisterEmployeeDTO{
		ID:              123456789,
		Email:           "jane.doe@example.com",
		FirstName:       "Jane",
		LastName:        "Doe",
		DateOfBirth:     "1990-05-04",
		Street:          "12 Elm St",
		City:            "Portland",
		State:           "OR",
		ZIP:             97201,
		CellPhone:       "555-0100",
		Password:        "secretpass",
		ConfirmPassword: "secretpass",
	}
}

func validUpdateDTO() employee.UpdatePersonalInfoDTO {
	return employee.UpdatePersonalInfoDTO{
		Email:       "jane.doe@example.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-05-04",
		Street:      "12 Elm St",
		City:        "Portland",
		State:       "OR",
		ZIP:         97201,
		CellPhone:   "555-0100",
	}
}

var _ = Describe("Employee Service", func() {
	var (
		mockRepo *MockRepository
		hasher   *MockHasher
		service  *employee.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		hasher = &MockHasher{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = employee.NewService(mockRepo, hasher, logger)
	})

	Describe("Register", func() {
		Context("with a valid payload", func() {
			It("should create the employee", func() {
				emp, err := service.Register(validRegisterDTO())
				Expect(err).NotTo(HaveOccurred())
				Expect(emp).NotTo(BeNil())
				Expect(emp.ID).To(Equal(int64(123456789)))
				Expect(emp.Email).To(Equal("jane.doe@example.com"))
			})

			It("should hand only the hash to the repository", func() {
				_, err := service.Register(validRegisterDTO())
				Expect(err).NotTo(HaveOccurred())
				Expect(hasher.hashed).To(ConsistOf("secretpass"))
				Expect(mockRepo.hashes[123456789]).To(Equal("hashed:secretpass"))
			})

			It("should honor the admin flag", func() {
				dto := validRegisterDTO()
				dto.IsAdmin = true
				emp, err := service.Register(dto)
				Expect(err).NotTo(HaveOccurred())
				Expect(emp.IsAdmin).To(BeTrue())
			})
		})

		Context("when the email is already in use", func() {
			BeforeEach(func() {
				_, err := service.Register(validRegisterDTO())
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject with the email-taken error", func() {
				dto := validRegisterDTO()
				dto.ID = 987654321
				emp, err := service.Register(dto)
				Expect(err).To(MatchError(apperrors.ErrEmailTaken))
				Expect(emp).To(BeNil())
			})
		})

		Context("when the employee ID is already in use", func() {
			BeforeEach(func() {
				_, err := service.Register(validRegisterDTO())
				Expect(err).NotTo(HaveOccurred())
			})

			It("should reject with the ID-taken error", func() {
				dto := validRegisterDTO()
				dto.Email = "other@example.com"
				emp, err := service.Register(dto)
				Expect(err).To(MatchError(apperrors.ErrEmployeeIDTaken))
				Expect(emp).To(BeNil())
			})
		})

		Context("with invalid fields", func() {
			It("should reject a ZIP outside the valid range", func() {
				dto := validRegisterDTO()
				dto.ZIP = 999
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("zip"))
			})

			It("should reject an unknown state code", func() {
				dto := validRegisterDTO()
				dto.State = "XX"
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("state"))
			})

			It("should reject mismatched password confirmation", func() {
				dto := validRegisterDTO()
				dto.ConfirmPassword = "different"
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("passwords do not match"))
			})

			It("should reject a short password", func() {
				dto := validRegisterDTO()
				dto.Password = "short"
				dto.ConfirmPassword = "short"
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
			})

			It("should reject a malformed date of birth", func() {
				dto := validRegisterDTO()
				dto.DateOfBirth = "05/04/1990"
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("date_of_birth"))
			})

			It("should not touch the repository", func() {
				dto := validRegisterDTO()
				dto.State = "XX"
				_, err := service.Register(dto)
				Expect(err).To(HaveOccurred())
				Expect(mockRepo.employees).To(BeEmpty())
			})
		})
	})

	Describe("UpdatePersonalInfo", func() {
		BeforeEach(func() {
			_, err := service.Register(validRegisterDTO())
			Expect(err).NotTo(HaveOccurred())
		})

		It("should update the stored fields", func() {
			dto := validUpdateDTO()
			dto.City = "Salem"
			emp, err := service.UpdatePersonalInfo(123456789, dto)
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.City).To(Equal("Salem"))
		})

		It("should keep the same email when unchanged", func() {
			emp, err := service.UpdatePersonalInfo(123456789, validUpdateDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.Email).To(Equal("jane.doe@example.com"))
		})

		It("should reject an email owned by a different employee", func() {
			other := validRegisterDTO()
			other.ID = 987654321
			other.Email = "taken@example.com"
			_, err := service.Register(other)
			Expect(err).NotTo(HaveOccurred())

			dto := validUpdateDTO()
			dto.Email = "taken@example.com"
			_, err = service.UpdatePersonalInfo(123456789, dto)
			Expect(err).To(MatchError(apperrors.ErrEmailTaken))
		})

		It("should not change the admin flag", func() {
			emp, err := service.UpdatePersonalInfo(123456789, validUpdateDTO())
			Expect(err).NotTo(HaveOccurred())
			Expect(emp.IsAdmin).To(BeFalse())
		})

		It("should return not found for an unknown employee", func() {
			_, err := service.UpdatePersonalInfo(555, validUpdateDTO())
			Expect(err).To(MatchError(apperrors.ErrEmployeeNotFound))
		})
	})

	Describe("GetByID", func() {
		It("should return not found for an unknown employee", func() {
			_, err := service.GetByID(42)
			Expect(err).To(MatchError(apperrors.ErrEmployeeNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should surface repository errors", func() {
			mockRepo.SetShouldFail(true, errors.New("database error"))
			_, err := service.GetAll()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("database error"))
		})
	})
})
