package employee

import (
	"log/slog"
	"time"

	errors "hrportal/internal"
)

// Repository is the identity store boundary.
type Repository interface {
	Create(e *Employee, passwordHash string) error
	GetByID(id int64) (*Employee, error)
	GetByEmail(email string) (*Employee, error)
	GetAll() ([]*Employee, error)
	Update(e *Employee) error
}

// PasswordHasher is implemented by the credential subsystem. The employee
// service never sees hashes again after handing them to the repository.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	logger *slog.Logger
}

func NewService(repo Repository, hasher PasswordHasher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a new employee. Email and employee ID uniqueness are each
// checked with their own lookup before the insert; the storage layer's unique
// constraints back the check up if two registrations race.
func (s *Service) Register(dto RegisterEmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("registration validation failed", "employee_id", dto.ID, "error", err)
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		s.logger.Warn("registration rejected: email in use", "email", dto.Email)
		return nil, errors.ErrEmailTaken
	}

	if existing, err := s.repo.GetByID(dto.ID); err == nil && existing != nil {
		s.logger.Warn("registration rejected: employee ID in use", "employee_id", dto.ID)
		return nil, errors.ErrEmployeeIDTaken
	}

	passwordHash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	emp := &Employee{
		ID:          dto.ID,
		FirstName:   dto.FirstName,
		MiddleName:  dto.MiddleName,
		LastName:    dto.LastName,
		DateOfBirth: dto.DOB(),
		Email:       dto.Email,
		Street:      dto.Street,
		City:        dto.City,
		State:       dto.State,
		ZIP:         dto.ZIP,
		HomePhone:   dto.HomePhone,
		CellPhone:   dto.CellPhone,
		IsAdmin:     dto.IsAdmin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(emp, passwordHash); err != nil {
		s.logger.Error("failed to create employee", "error", err, "employee_id", dto.ID)
		return nil, err
	}

	s.logger.Info("employee registered", "employee_id", emp.ID, "is_admin", emp.IsAdmin)
	return emp, nil
}

// GetAll lists every employee's personal info. Admin scope is enforced by the
// guard before this is reached.
func (s *Service) GetAll() ([]*Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, err
	}
	return employees, nil
}

func (s *Service) GetByID(id int64) (*Employee, error) {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.ErrEmployeeNotFound
	}
	return emp, nil
}

// UpdatePersonalInfo overlays submitted fields onto the stored employee. The
// employee ID and admin flag are immutable here.
func (s *Service) UpdatePersonalInfo(id int64, dto UpdatePersonalInfoDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("personal info validation failed", "employee_id", id, "error", err)
		return nil, err
	}

	emp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.ErrEmployeeNotFound
	}

	// a different employee already owning the email is a duplicate
	if other, err := s.repo.GetByEmail(dto.Email); err == nil && other != nil && other.ID != id {
		s.logger.Warn("personal info rejected: email in use", "email", dto.Email, "employee_id", id)
		return nil, errors.ErrEmailTaken
	}

	emp.FirstName = dto.FirstName
	emp.MiddleName = dto.MiddleName
	emp.LastName = dto.LastName
	emp.DateOfBirth = dto.DOB()
	emp.Email = dto.Email
	emp.Street = dto.Street
	emp.City = dto.City
	emp.State = dto.State
	emp.ZIP = dto.ZIP
	emp.HomePhone = dto.HomePhone
	emp.CellPhone = dto.CellPhone
	emp.UpdatedAt = time.Now()

	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id)
		return nil, err
	}

	s.logger.Info("personal info updated", "employee_id", id)
	return emp, nil
}
