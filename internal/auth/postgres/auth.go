package postgres

import (
	"errors"

	"gorm.io/gorm"

	"hrportal/internal"
	"hrportal/internal/auth"
	employeeDatamodel "hrportal/internal/core/datamodel/employee"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCredential returns the stored password hash for an employee. The hash is
// handed straight to bcrypt by the service and never surfaces anywhere else.
func (r *Repository) GetCredential(employeeID int64) (string, error) {
	var row employeeDatamodel.Employee
	err := r.db.Select("password_hash").Where("id = ?", employeeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", internal.ErrEmployeeNotFound
		}
		return "", err
	}
	return row.PasswordHash, nil
}

func (r *Repository) GetIdentity(employeeID int64) (*auth.Identity, error) {
	var row employeeDatamodel.Employee
	err := r.db.Select("id", "email", "is_admin").Where("id = ?", employeeID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &auth.Identity{
		EmployeeID: row.ID,
		Email:      row.Email,
		IsAdmin:    row.IsAdmin,
	}, nil
}
