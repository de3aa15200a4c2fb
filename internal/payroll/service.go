package payroll

import (
	"log/slog"
	"time"

	errors "hrportal/internal"
)

// Repository is the payroll store boundary.
type Repository interface {
	Create(p *Payroll) error
	GetByID(id int64) (*Payroll, error)
	GetByEmployeeID(employeeID int64) ([]*Payroll, error)
	GetAll() ([]*Payroll, error)
	Update(p *Payroll) error
	Delete(id int64) error
}

// EmployeeLookup is the cross-entity existence check against the identity
// store, used before accepting a payroll for an employee ID.
type EmployeeLookup interface {
	Exists(employeeID int64) (bool, error)
}

type Service struct {
	repo      Repository
	employees EmployeeLookup
	logger    *slog.Logger
}

func NewService(repo Repository, employees EmployeeLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

// Create adds payroll info for the employee named in the DTO. It fails when
// the employee does not exist or already has payroll info. The read-then-
// write here is backed by the storage unique index on employee_id, so racing
// creates cannot both commit.
func (s *Service) Create(dto PayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("payroll validation failed", "employee_id", dto.EmployeeID, "error", err)
		return nil, err
	}

	exists, err := s.employees.Exists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("employee lookup failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if !exists {
		return nil, errors.NewValidationFieldError("employee_id", "Employee ID not found.", errors.ErrCodeEmployeeNotFound)
	}

	existing, err := s.repo.GetByEmployeeID(dto.EmployeeID)
	if err != nil {
		s.logger.Error("payroll lookup failed", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}
	if len(existing) > 0 {
		s.logger.Warn("payroll rejected: already exists", "employee_id", dto.EmployeeID)
		return nil, errors.ErrPayrollExists
	}

	now := time.Now()
	p := &Payroll{
		EmployeeID:     dto.EmployeeID,
		AccountType:    dto.AccountType,
		AccountNumber:  dto.AccountNumber,
		RoutingNumber:  dto.RoutingNumber,
		AmountWithheld: dto.AmountWithheld,
		NumAllowances:  dto.NumAllowances,
		ClaimExemption: dto.ClaimExemption,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create payroll", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("payroll created", "payroll_id", p.ID, "employee_id", p.EmployeeID)
	return p, nil
}

// CreateForEmployee is the self-service variant: the owner is always the
// session identity, never anything from the request payload.
func (s *Service) CreateForEmployee(employeeID int64, dto PayrollDTO) (*Payroll, error) {
	dto.EmployeeID = employeeID
	return s.Create(dto)
}

// GetAll lists every payroll record (admin scope).
func (s *Service) GetAll() ([]*Payroll, error) {
	payrolls, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list payrolls", "error", err)
		return nil, err
	}
	return payrolls, nil
}

// GetForEmployee lists payroll info owned by one employee. Self-scope callers
// always pass their own session identity here.
func (s *Service) GetForEmployee(employeeID int64) ([]*Payroll, error) {
	payrolls, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to list payrolls for employee", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return payrolls, nil
}

// Update overlays the submitted fields on an existing payroll record. The
// owning employee cannot be changed.
func (s *Service) Update(id int64, dto PayrollDTO) (*Payroll, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("payroll validation failed", "payroll_id", id, "error", err)
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.ErrPayrollNotFound
	}

	p.AccountType = dto.AccountType
	p.AccountNumber = dto.AccountNumber
	p.RoutingNumber = dto.RoutingNumber
	p.AmountWithheld = dto.AmountWithheld
	p.NumAllowances = dto.NumAllowances
	p.ClaimExemption = dto.ClaimExemption
	p.UpdatedAt = time.Now()

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update payroll", "error", err, "payroll_id", id)
		return nil, err
	}

	s.logger.Info("payroll updated", "payroll_id", id)
	return p, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return errors.ErrPayrollNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete payroll", "error", err, "payroll_id", id)
		return err
	}

	s.logger.Info("payroll deleted", "payroll_id", id)
	return nil
}
