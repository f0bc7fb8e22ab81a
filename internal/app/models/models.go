package models

// PaymentStatus is the lifecycle state of a payment request
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
)

// PaymentMethod is how a payment request is settled
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
)

// Academic term labels used by seeded records
const (
	AcademicYear2024 = "2024-2025"
	SemesterFirst    = "1st Semester"
	AllYearLevels    = "All"
)

// Year level bounds for students
const (
	MinYearLevel = 1
	MaxYearLevel = 4
)
