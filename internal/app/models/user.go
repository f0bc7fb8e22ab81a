package models

import (
	"time"
)

// User defines the login account shared by officers and students
type User struct {
	ID          int64     `json:"id" db:"id"`
	Username    string    `json:"username" db:"username"` // Unique
	Email       string    `json:"email" db:"email"`
	Password    string    `json:"-" db:"password"` // Hashed
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	IsStaff     bool      `json:"isStaff" db:"is_staff"`
	IsSuperuser bool      `json:"isSuperuser" db:"is_superuser"`
	IsActive    bool      `json:"isActive" db:"is_active"`
	DateJoined  time.Time `json:"dateJoined" db:"date_joined"`
}

// Officer is an organization member allowed to handle payments. One per user.
type Officer struct {
	ID                 int64  `json:"id" db:"id"`
	UserID             int64  `json:"userId" db:"user_id"`
	OrganizationID     int64  `json:"organizationId" db:"organization_id"`
	EmployeeID         string `json:"employeeId" db:"employee_id"`
	FirstName          string `json:"firstName" db:"first_name"`
	LastName           string `json:"lastName" db:"last_name"`
	Email              string `json:"email" db:"email"`
	PhoneNumber        string `json:"phoneNumber" db:"phone_number"`
	Role               string `json:"role" db:"role"`
	CanProcessPayments bool   `json:"canProcessPayments" db:"can_process_payments"`
	CanVoidPayments    bool   `json:"canVoidPayments" db:"can_void_payments"`
	CanGenerateReports bool   `json:"canGenerateReports" db:"can_generate_reports"`
}

// Student is an enrolled student. One per user.
type Student struct {
	ID              int64  `json:"id" db:"id"`
	UserID          int64  `json:"userId" db:"user_id"`
	StudentIDNumber string `json:"studentIdNumber" db:"student_id_number"`
	FirstName       string `json:"firstName" db:"first_name"`
	LastName        string `json:"lastName" db:"last_name"`
	MiddleName      string `json:"middleName" db:"middle_name"`
	Email           string `json:"email" db:"email"`
	PhoneNumber     string `json:"phoneNumber" db:"phone_number"`
	CourseID        int64  `json:"courseId" db:"course_id"`
	CollegeID       int64  `json:"collegeId" db:"college_id"`
	YearLevel       int    `json:"yearLevel" db:"year_level"`
	AcademicYear    string `json:"academicYear" db:"academic_year"`
	Semester        string `json:"semester" db:"semester"`
}
