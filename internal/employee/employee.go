package employee

import (
	"time"

	employeeDatamodel "hrportal/internal/core/datamodel/employee"
)

// Employee is the domain model. The password hash deliberately does not
// appear here; credentials live behind the auth repository and the only
// operations on them are hashing at registration and verification at login.
type Employee struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `json:"email"`
	Street      string    `json:"street"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZIP         int64     `json:"zip"`
	HomePhone   string    `json:"home_phone,omitempty"`
	CellPhone   string    `json:"cell_phone"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// stateCodes are the US state choices accepted on personal info forms.
var stateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true,
}

func IsValidState(code string) bool {
	return stateCodes[code]
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:          e.ID,
		FirstName:   e.FirstName,
		MiddleName:  e.MiddleName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		Email:       e.Email,
		Street:      e.Street,
		City:        e.City,
		State:       e.State,
		ZIP:         e.ZIP,
		HomePhone:   e.HomePhone,
		CellPhone:   e.CellPhone,
		IsAdmin:     e.IsAdmin,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:          e.ID,
		FirstName:   e.FirstName,
		MiddleName:  e.MiddleName,
		LastName:    e.LastName,
		DateOfBirth: e.DateOfBirth,
		Email:       e.Email,
		Street:      e.Street,
		City:        e.City,
		State:       e.State,
		ZIP:         e.ZIP,
		HomePhone:   e.HomePhone,
		CellPhone:   e.CellPhone,
		IsAdmin:     e.IsAdmin,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
