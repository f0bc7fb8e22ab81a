package seed

import (
	"context"

	"github.com/yigit/unipay/internal/app/models"
)

// OrganizationStore ensures organizations by code
type OrganizationStore interface {
	GetOrCreate(ctx context.Context, code string, defaults models.Organization) (*models.Organization, bool, error)
}

// CollegeStore ensures colleges by name
type CollegeStore interface {
	GetOrCreate(ctx context.Context, name string, defaults models.College) (*models.College, bool, error)
}

// CourseStore ensures courses by (name, college)
type CourseStore interface {
	GetOrCreate(ctx context.Context, name string, collegeID int64, defaults models.Course) (*models.Course, bool, error)
}

// UserStore ensures login accounts by username and (re)sets their passwords.
// Passwords are given in plain text; the store hashes them.
type UserStore interface {
	GetOrCreate(ctx context.Context, username string, defaults models.User) (*models.User, bool, error)
	SetPassword(ctx context.Context, userID int64, password string) error
}

// OfficerStore ensures officer profiles by user
type OfficerStore interface {
	GetOrCreate(ctx context.Context, userID int64, defaults models.Officer) (*models.Officer, bool, error)
}

// StudentStore ensures student profiles by user
type StudentStore interface {
	GetOrCreate(ctx context.Context, userID int64, defaults models.Student) (*models.Student, bool, error)
}

// FeeTypeStore ensures fee types by (organization, name, academic year, semester)
type FeeTypeStore interface {
	GetOrCreate(ctx context.Context, key models.FeeTypeKey, defaults models.FeeType) (*models.FeeType, bool, error)
}

// PaymentRequestStore ensures payment requests and backfills their signatures
type PaymentRequestStore interface {
	GetOrCreate(ctx context.Context, key models.PaymentRequestKey, defaults models.PaymentRequest) (*models.PaymentRequest, bool, error)
	SetQRSignature(ctx context.Context, id int64, signature string) error
}

// Stores is the persistence surface the seeder writes through
type Stores struct {
	Organizations   OrganizationStore
	Colleges        CollegeStore
	Courses         CourseStore
	Users           UserStore
	Officers        OfficerStore
	Students        StudentStore
	FeeTypes        FeeTypeStore
	PaymentRequests PaymentRequestStore
}
