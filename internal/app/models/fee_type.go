package models

import (
	"github.com/shopspring/decimal"
)

// FeeTypeKey is the natural key of a fee type
type FeeTypeKey struct {
	OrganizationID int64
	Name           string
	AcademicYear   string
	Semester       string
}

// FeeType is a priced obligation an organization charges for a term
type FeeType struct {
	ID                   int64           `json:"id" db:"id"`
	OrganizationID       int64           `json:"organizationId" db:"organization_id"`
	Name                 string          `json:"name" db:"name"`
	AcademicYear         string          `json:"academicYear" db:"academic_year"`
	Semester             string          `json:"semester" db:"semester"`
	Amount               decimal.Decimal `json:"amount" db:"amount"`
	Description          string          `json:"description" db:"description"`
	ApplicableYearLevels string          `json:"applicableYearLevels" db:"applicable_year_levels"`

	Organization *Organization `json:"organization,omitempty"` // Relation, no db tag
}
