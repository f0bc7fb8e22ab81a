// Package seed fills a UniPay database with development records: organizations,
// colleges, courses, officers, students, fee types and payment requests.
//
// Every record is ensured through a get-or-create on its natural key, so a
// rerun only fills in what is missing. Payment requests are the exception: the
// random queue number is part of their key, so reruns may add new rows.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/signature"
)

// Rand is the random source used for course, year level, fee and queue number picks.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. A zero seed derives one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// Options are the per-run counts
type Options struct {
	// Students is the number of generated student accounts
	Students int
	// Orgs is accepted for compatibility; the organization list is fixed
	Orgs int
	// FeesPerOrg is the number of fee types per organization
	FeesPerOrg int
	// RequestsPerStudent is the number of payment requests per generated student
	RequestsPerStudent int
}

// DefaultOptions returns the command line defaults
func DefaultOptions() Options {
	return Options{Students: 10, Orgs: 2, FeesPerOrg: 3, RequestsPerStudent: 1}
}

// Validate rejects negative counts
func (o Options) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"students", o.Students},
		{"orgs", o.Orgs},
		{"fees", o.FeesPerOrg},
		{"requests", o.RequestsPerStudent},
	}
	for _, f := range fields {
		if f.value < 0 {
			return apperrors.NewValidationError(fmt.Sprintf("%s must not be negative, got %d", f.name, f.value))
		}
	}
	return nil
}

// Summary counts what a run ensured
type Summary struct {
	Organizations          int
	Colleges               int
	Courses                int
	Officers               int
	SuperAccountsCreated   int
	FeeTypes               int
	Students               int
	PaymentRequestsCreated int
	SignaturesWritten      int
}

// Config wires a Seeder to its collaborators
type Config struct {
	Stores Stores
	// Secret signs payment request QR codes; empty uses signature.DefaultSecret
	Secret string
	// Rand defaults to a clock-seeded source
	Rand Rand
	// Now defaults to time.Now
	Now func() time.Time
	// Out receives progress lines; defaults to io.Discard
	Out   io.Writer
	Color bool
	// Logger receives structured logs
	Logger zerolog.Logger
}

// Seeder runs the seeding stages against a set of stores
type Seeder struct {
	stores Stores
	signer *signature.Signer
	rnd    Rand
	now    func() time.Time
	report *Reporter
	lgr    zerolog.Logger
}

// ErrMissingStore is returned by New when a store is not configured
var ErrMissingStore = errors.New("seed: store not configured")

// New builds a Seeder from cfg
func New(cfg Config) (*Seeder, error) {
	st := cfg.Stores
	missing := []string{}
	if st.Organizations == nil {
		missing = append(missing, "organizations")
	}
	if st.Colleges == nil {
		missing = append(missing, "colleges")
	}
	if st.Courses == nil {
		missing = append(missing, "courses")
	}
	if st.Users == nil {
		missing = append(missing, "users")
	}
	if st.Officers == nil {
		missing = append(missing, "officers")
	}
	if st.Students == nil {
		missing = append(missing, "students")
	}
	if st.FeeTypes == nil {
		missing = append(missing, "fee types")
	}
	if st.PaymentRequests == nil {
		missing = append(missing, "payment requests")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingStore, strings.Join(missing, ", "))
	}

	rnd := cfg.Rand
	if rnd == nil {
		rnd = NewRand(0)
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	return &Seeder{
		stores: st,
		signer: signature.NewSigner(cfg.Secret),
		rnd:    rnd,
		now:    now,
		report: NewReporter(out, cfg.Color),
		lgr:    cfg.Logger,
	}, nil
}

// Run executes every stage in order and stops at the first store error
func (s *Seeder) Run(ctx context.Context, opts Options) (*Summary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s.lgr.Debug().
		Int("students", opts.Students).
		Int("orgs", opts.Orgs).
		Int("fees", opts.FeesPerOrg).
		Int("requests", opts.RequestsPerStudent).
		Msg("Seeding started; orgs does not limit the fixed organization list")

	sum := &Summary{}

	s.report.Heading("Creating organizations")
	orgs, err := s.seedOrganizations(ctx)
	if err != nil {
		return nil, fmt.Errorf("organizations: %w", err)
	}
	sum.Organizations = len(orgs)
	s.report.Success("Organizations: %d", len(orgs))

	s.report.Heading("Creating colleges/departments")
	colleges, err := s.seedColleges(ctx)
	if err != nil {
		return nil, fmt.Errorf("colleges: %w", err)
	}
	sum.Colleges = len(colleges)
	s.report.Success("Colleges: %d", len(colleges))

	s.report.Heading("Creating courses/programs")
	courses, err := s.seedCourses(ctx, colleges)
	if err != nil {
		return nil, fmt.Errorf("courses: %w", err)
	}
	sum.Courses = len(courses)
	s.report.Success("Courses: %d", len(courses))

	s.report.Heading("Creating officers (staff users)")
	if sum.Officers, err = s.seedOfficers(ctx, orgs); err != nil {
		return nil, fmt.Errorf("officers: %w", err)
	}
	s.report.Success("Officers created.")

	s.report.Heading("Creating superusers (for testing)")
	if sum.SuperAccountsCreated, err = s.seedSuperAccounts(ctx, orgs, courses); err != nil {
		return nil, fmt.Errorf("superusers: %w", err)
	}
	s.report.Success("Superusers ensured (user/pass: %s %s, %s %s).",
		superOfficerUsername, superPassword, superStudentUsername, superPassword)

	s.report.Heading("Creating fee types")
	fees, err := s.seedFeeTypes(ctx, orgs, opts.FeesPerOrg)
	if err != nil {
		return nil, fmt.Errorf("fee types: %w", err)
	}
	sum.FeeTypes = len(fees)
	s.report.Success("Fee types: %d", len(fees))

	s.report.Heading("Creating students")
	students, err := s.seedStudents(ctx, courses, opts.Students)
	if err != nil {
		return nil, fmt.Errorf("students: %w", err)
	}
	sum.Students = len(students)
	s.report.Success("Students: %d", len(students))

	s.report.Heading("Creating payment requests")
	if err := s.seedPaymentRequests(ctx, students, fees, opts.RequestsPerStudent, sum); err != nil {
		return nil, fmt.Errorf("payment requests: %w", err)
	}
	s.report.Success("Payment requests created: %d", sum.PaymentRequestsCreated)

	s.report.Success("Fake data generation complete.")
	s.lgr.Info().
		Int("organizations", sum.Organizations).
		Int("colleges", sum.Colleges).
		Int("courses", sum.Courses).
		Int("officers", sum.Officers).
		Int("superAccountsCreated", sum.SuperAccountsCreated).
		Int("feeTypes", sum.FeeTypes).
		Int("students", sum.Students).
		Int("paymentRequestsCreated", sum.PaymentRequestsCreated).
		Int("signaturesWritten", sum.SignaturesWritten).
		Msg("Seeding finished")
	return sum, nil
}

func (s *Seeder) seedOrganizations(ctx context.Context) ([]*models.Organization, error) {
	orgs := make([]*models.Organization, 0, len(organizationSeeds))
	for _, o := range organizationSeeds {
		org, _, err := s.stores.Organizations.GetOrCreate(ctx, o.code, models.Organization{
			Name:          o.name,
			Department:    o.name,
			Description:   "Seeded organization",
			ContactEmail:  strings.ToLower(o.code) + "@example.com",
			ContactPhone:  "0917-000-0000",
			BoothLocation: "Main Building",
		})
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func (s *Seeder) seedColleges(ctx context.Context) ([]*models.College, error) {
	colleges := make([]*models.College, 0, len(collegeSeeds))
	for _, c := range collegeSeeds {
		college, _, err := s.stores.Colleges.GetOrCreate(ctx, c.name, models.College{
			Code:        c.code,
			Description: "Seeded " + c.name,
		})
		if err != nil {
			return nil, err
		}
		colleges = append(colleges, college)
	}
	return colleges, nil
}

func (s *Seeder) seedCourses(ctx context.Context, colleges []*models.College) ([]*models.Course, error) {
	courses := make([]*models.Course, 0, len(courseSeeds))
	for _, c := range courseSeeds {
		college := colleges[c.college]
		course, _, err := s.stores.Courses.GetOrCreate(ctx, c.name, college.ID, models.Course{
			Code:        c.code,
			Description: "Seeded " + c.name,
		})
		if err != nil {
			return nil, err
		}
		course.College = college
		courses = append(courses, course)
	}
	return courses, nil
}

// seedOfficers ensures one treasurer per organization. Passwords are reset every run.
func (s *Seeder) seedOfficers(ctx context.Context, orgs []*models.Organization) (int, error) {
	n := 0
	for _, org := range orgs {
		username := "officer_" + strings.ToLower(org.Code)
		user, _, err := s.stores.Users.GetOrCreate(ctx, username, models.User{
			Email:     username + "@example.com",
			FirstName: "Org",
			LastName:  org.Code,
			IsStaff:   true,
		})
		if err != nil {
			return n, err
		}
		if err := s.stores.Users.SetPassword(ctx, user.ID, officerPassword); err != nil {
			return n, err
		}

		_, _, err = s.stores.Officers.GetOrCreate(ctx, user.ID, models.Officer{
			OrganizationID:     org.ID,
			EmployeeID:         "EMP-" + org.Code,
			FirstName:          "Org",
			LastName:           org.Code,
			Email:              user.Email,
			PhoneNumber:        "0917-123-4567",
			Role:               "Treasurer",
			CanProcessPayments: true,
		})
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// seedSuperAccounts creates superofficer and superstudent on first run only.
// An existing account is left untouched, password included.
func (s *Seeder) seedSuperAccounts(ctx context.Context, orgs []*models.Organization, courses []*models.Course) (int, error) {
	created := 0

	if len(orgs) > 0 {
		user, isNew, err := s.stores.Users.GetOrCreate(ctx, superOfficerUsername, models.User{
			Email:       superOfficerUsername + "@example.com",
			FirstName:   "Super",
			LastName:    "Officer",
			IsStaff:     true,
			IsSuperuser: true,
		})
		if err != nil {
			return created, err
		}
		if isNew {
			if err := s.stores.Users.SetPassword(ctx, user.ID, superPassword); err != nil {
				return created, err
			}
			_, _, err = s.stores.Officers.GetOrCreate(ctx, user.ID, models.Officer{
				OrganizationID:     orgs[0].ID,
				EmployeeID:         "EMP-SUPER",
				FirstName:          "Super",
				LastName:           "Officer",
				Email:              user.Email,
				PhoneNumber:        "0917-111-1111",
				Role:               "Administrator",
				CanProcessPayments: true,
				CanVoidPayments:    true,
				CanGenerateReports: true,
			})
			if err != nil {
				return created, err
			}
			created++
		}
	}

	user, isNew, err := s.stores.Users.GetOrCreate(ctx, superStudentUsername, models.User{
		Email:       superStudentUsername + "@example.com",
		FirstName:   "Super",
		LastName:    "Student",
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		return created, err
	}
	if !isNew {
		return created, nil
	}
	if err := s.stores.Users.SetPassword(ctx, user.ID, superPassword); err != nil {
		return created, err
	}
	created++

	if len(courses) == 0 {
		s.lgr.Warn().Msg("No course available, superstudent has no student profile")
		return created, nil
	}
	course := courses[0]
	_, _, err = s.stores.Students.GetOrCreate(ctx, user.ID, models.Student{
		StudentIDNumber: "2025-ADMIN",
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		MiddleName:      "X",
		Email:           user.Email,
		PhoneNumber:     "0917-222-2222",
		CourseID:        course.ID,
		CollegeID:       course.CollegeID,
		YearLevel:       models.MaxYearLevel,
		AcademicYear:    academicYear,
		Semester:        semester,
	})
	if err != nil {
		return created, err
	}
	return created, nil
}

// FeeAmount is the price of the i-th (zero based) generated fee type: 100 + 50*(i+1)
func FeeAmount(i int) decimal.Decimal {
	return decimal.NewFromInt(int64(100 + 50*(i+1))).Round(2)
}

func (s *Seeder) seedFeeTypes(ctx context.Context, orgs []*models.Organization, perOrg int) ([]*models.FeeType, error) {
	fees := make([]*models.FeeType, 0, len(orgs)*perOrg)
	for _, org := range orgs {
		for i := 0; i < perOrg; i++ {
			key := models.FeeTypeKey{
				OrganizationID: org.ID,
				Name:           fmt.Sprintf("Fee %d", i+1),
				AcademicYear:   academicYear,
				Semester:       semester,
			}
			fee, _, err := s.stores.FeeTypes.GetOrCreate(ctx, key, models.FeeType{
				Amount:               FeeAmount(i),
				Description:          "Sample fee",
				ApplicableYearLevels: models.AllYearLevels,
			})
			if err != nil {
				return nil, err
			}
			fee.Organization = org
			fees = append(fees, fee)
		}
	}
	return fees, nil
}

// Username returns the login of the i-th (zero based) generated student
func Username(i int) string {
	return fmt.Sprintf("student%03d", i+1)
}

// seedStudents ensures count student accounts with a random course and year level.
// Passwords are reset every run.
func (s *Seeder) seedStudents(ctx context.Context, courses []*models.Course, count int) ([]*models.Student, error) {
	students := make([]*models.Student, 0, count)
	for i := 0; i < count; i++ {
		username := Username(i)
		user, _, err := s.stores.Users.GetOrCreate(ctx, username, models.User{
			Email:     username + "@example.com",
			FirstName: fmt.Sprintf("Student%d", i+1),
			LastName:  "Test",
		})
		if err != nil {
			return nil, err
		}
		if err := s.stores.Users.SetPassword(ctx, user.ID, studentPassword); err != nil {
			return nil, err
		}

		if len(courses) == 0 {
			s.lgr.Warn().Str("username", username).Msg("No course available, skipping student profile")
			continue
		}
		course := courses[s.rnd.IntN(len(courses))]
		yearLevel := models.MinYearLevel + s.rnd.IntN(models.MaxYearLevel-models.MinYearLevel+1)

		stu, _, err := s.stores.Students.GetOrCreate(ctx, user.ID, models.Student{
			StudentIDNumber: fmt.Sprintf("2025-%d", studentIDBase+i),
			FirstName:       user.FirstName,
			LastName:        user.LastName,
			MiddleName:      "A",
			Email:           user.Email,
			PhoneNumber:     "0917-000-0000",
			CourseID:        course.ID,
			CollegeID:       course.CollegeID,
			YearLevel:       yearLevel,
			AcademicYear:    academicYear,
			Semester:        semester,
		})
		if err != nil {
			return nil, err
		}
		students = append(students, stu)
	}
	return students, nil
}

// QueueNumber renders the booth queue code shown to a student, e.g. "BSCS-007"
func QueueNumber(orgCode string, n int) string {
	return fmt.Sprintf("%s-%03d", orgCode, n)
}

func (s *Seeder) seedPaymentRequests(ctx context.Context, students []*models.Student, fees []*models.FeeType, perStudent int, sum *Summary) error {
	if len(fees) == 0 {
		if len(students) > 0 && perStudent > 0 {
			s.report.Warning("No fee types available, skipping payment requests")
			s.lgr.Warn().Int("students", len(students)).Msg("No fee types available, skipping payment requests")
		}
		return nil
	}

	for _, stu := range students {
		for j := 0; j < perStudent; j++ {
			fee := fees[s.rnd.IntN(len(fees))]
			key := models.PaymentRequestKey{
				StudentID:      stu.ID,
				OrganizationID: fee.OrganizationID,
				FeeTypeID:      fee.ID,
				Amount:         fee.Amount,
				QueueNumber:    QueueNumber(fee.Organization.Code, 1+s.rnd.IntN(maxQueueNumber)),
			}
			pr, created, err := s.stores.PaymentRequests.GetOrCreate(ctx, key, models.PaymentRequest{
				PaymentMethod: models.PaymentMethodCash,
				Status:        models.PaymentStatusPending,
				ExpiresAt:     s.now().Add(paymentRequestTTL),
			})
			if err != nil {
				return err
			}
			if created {
				sum.PaymentRequestsCreated++
			}

			if pr.QRSignature == "" {
				sig := s.signer.Sign(pr.RequestID.String())
				if err := s.stores.PaymentRequests.SetQRSignature(ctx, pr.ID, sig); err != nil {
					return err
				}
				pr.QRSignature = sig
				sum.SignaturesWritten++
			}
		}
	}
	return nil
}
