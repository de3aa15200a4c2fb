package compensation

import (
	"log/slog"
	"time"

	errors "hrportal/internal"
)

// Repository is the compensation store boundary.
type Repository interface {
	Create(c *Compensation) error
	GetByID(id int64) (*Compensation, error)
	GetByEmployeeID(employeeID int64) ([]*Compensation, error)
	Update(c *Compensation) error
	Delete(id int64) error
}

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

// Create records a new pay period for the employee in the DTO. An employee
// accumulates many of these; overlapping periods are accepted.
func (s *Service) Create(dto CompensationDTO) (*Compensation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("compensation validation failed", "employee_id", dto.EmployeeID, "error", err)
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

	now := time.Now()
	c := &Compensation{
		EmployeeID:  dto.EmployeeID,
		StartDate:   dto.Start(),
		EndDate:     dto.End(),
		NetPay:      dto.NetPay,
		GrossPay:    dto.GrossPay,
		HourlyWage:  dto.HourlyWage,
		HoursWorked: dto.HoursWorked,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(c); err != nil {
		s.logger.Error("failed to create compensation", "error", err, "employee_id", dto.EmployeeID)
		return nil, err
	}

	s.logger.Info("compensation created", "compensation_id", c.ID, "employee_id", c.EmployeeID)
	return c, nil
}

// GetForEmployee lists pay-period history for one employee. Self-scope
// callers always pass their own session identity.
func (s *Service) GetForEmployee(employeeID int64) ([]*Compensation, error) {
	compensations, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		s.logger.Error("failed to list compensations", "error", err, "employee_id", employeeID)
		return nil, err
	}
	return compensations, nil
}

// Update overlays the submitted fields on an existing record. The owning
// employee cannot be changed.
func (s *Service) Update(id int64, dto CompensationDTO) (*Compensation, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("compensation validation failed", "compensation_id", id, "error", err)
		return nil, err
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, errors.ErrCompensationNotFound
	}

	c.StartDate = dto.Start()
	c.EndDate = dto.End()
	c.NetPay = dto.NetPay
	c.GrossPay = dto.GrossPay
	c.HourlyWage = dto.HourlyWage
	c.HoursWorked = dto.HoursWorked
	c.UpdatedAt = time.Now()

	if err := s.repo.Update(c); err != nil {
		s.logger.Error("failed to update compensation", "error", err, "compensation_id", id)
		return nil, err
	}

	s.logger.Info("compensation updated", "compensation_id", id)
	return c, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return errors.ErrCompensationNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete compensation", "error", err, "compensation_id", id)
		return err
	}

	s.logger.Info("compensation deleted", "compensation_id", id)
	return nil
}
