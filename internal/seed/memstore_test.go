package seed

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/auth"
	"golang.org/x/crypto/bcrypt"
)

// In-memory database backing the fake stores

type courseKey struct {
	name      string
	collegeID int64
}

type memDB struct {
	nextID   int64
	orgs     map[string]*models.Organization
	colleges map[string]*models.College
	courses  map[courseKey]*models.Course
	users    map[string]*models.User
	officers map[int64]*models.Officer // by user ID
	students map[int64]*models.Student // by user ID
	fees     map[models.FeeTypeKey]*models.FeeType
	requests []*models.PaymentRequest

	// errUsers, when set, is returned by every user store call
	errUsers error
}

func newMemDB() *memDB {
	return &memDB{
		orgs:     make(map[string]*models.Organization),
		colleges: make(map[string]*models.College),
		courses:  make(map[courseKey]*models.Course),
		users:    make(map[string]*models.User),
		officers: make(map[int64]*models.Officer),
		students: make(map[int64]*models.Student),
		fees:     make(map[models.FeeTypeKey]*models.FeeType),
	}
}

func (m *memDB) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memDB) stores() Stores {
	return Stores{
		Organizations:   memOrgs{m},
		Colleges:        memColleges{m},
		Courses:         memCourses{m},
		Users:           memUsers{m},
		Officers:        memOfficers{m},
		Students:        memStudents{m},
		FeeTypes:        memFees{m},
		PaymentRequests: memRequests{m},
	}
}

func (m *memDB) userByID(id int64) *models.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *memDB) courseByID(id int64) *models.Course {
	for _, c := range m.courses {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *memDB) feeByID(id int64) *models.FeeType {
	for _, f := range m.fees {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (m *memDB) studentRows() []*models.Student {
	rows := make([]*models.Student, 0, len(m.students))
	for _, s := range m.students {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

// Stores return copies of rows, like a database would

type memOrgs struct{ db *memDB }

func (s memOrgs) GetOrCreate(_ context.Context, code string, defaults models.Organization) (*models.Organization, bool, error) {
	if org, ok := s.db.orgs[code]; ok {
		cp := *org
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.Code = code
	s.db.orgs[code] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memColleges struct{ db *memDB }

func (s memColleges) GetOrCreate(_ context.Context, name string, defaults models.College) (*models.College, bool, error) {
	if c, ok := s.db.colleges[name]; ok {
		cp := *c
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.Name = name
	s.db.colleges[name] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memCourses struct{ db *memDB }

func (s memCourses) GetOrCreate(_ context.Context, name string, collegeID int64, defaults models.Course) (*models.Course, bool, error) {
	key := courseKey{name, collegeID}
	if c, ok := s.db.courses[key]; ok {
		cp := *c
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.Name = name
	defaults.CollegeID = collegeID
	s.db.courses[key] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memUsers struct{ db *memDB }

func (s memUsers) GetOrCreate(_ context.Context, username string, defaults models.User) (*models.User, bool, error) {
	if s.db.errUsers != nil {
		return nil, false, s.db.errUsers
	}
	if u, ok := s.db.users[username]; ok {
		cp := *u
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.Username = username
	defaults.Password = ""
	defaults.IsActive = true
	s.db.users[username] = &defaults
	cp := defaults
	return &cp, true, nil
}

func (s memUsers) SetPassword(_ context.Context, userID int64, password string) error {
	if s.db.errUsers != nil {
		return s.db.errUsers
	}
	u := s.db.userByID(userID)
	if u == nil {
		return apperrors.ErrUserNotFound
	}
	hashed, err := auth.HashPasswordCost(password, bcrypt.MinCost)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

type memOfficers struct{ db *memDB }

func (s memOfficers) GetOrCreate(_ context.Context, userID int64, defaults models.Officer) (*models.Officer, bool, error) {
	if o, ok := s.db.officers[userID]; ok {
		cp := *o
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.UserID = userID
	s.db.officers[userID] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memStudents struct{ db *memDB }

func (s memStudents) GetOrCreate(_ context.Context, userID int64, defaults models.Student) (*models.Student, bool, error) {
	if st, ok := s.db.students[userID]; ok {
		cp := *st
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.UserID = userID
	s.db.students[userID] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memFees struct{ db *memDB }

func (s memFees) GetOrCreate(_ context.Context, key models.FeeTypeKey, defaults models.FeeType) (*models.FeeType, bool, error) {
	if f, ok := s.db.fees[key]; ok {
		cp := *f
		return &cp, false, nil
	}
	defaults.ID = s.db.id()
	defaults.OrganizationID = key.OrganizationID
	defaults.Name = key.Name
	defaults.AcademicYear = key.AcademicYear
	defaults.Semester = key.Semester
	s.db.fees[key] = &defaults
	cp := defaults
	return &cp, true, nil
}

type memRequests struct{ db *memDB }

func (s memRequests) GetOrCreate(_ context.Context, key models.PaymentRequestKey, defaults models.PaymentRequest) (*models.PaymentRequest, bool, error) {
	for _, pr := range s.db.requests {
		if pr.StudentID == key.StudentID && pr.OrganizationID == key.OrganizationID &&
			pr.FeeTypeID == key.FeeTypeID && pr.QueueNumber == key.QueueNumber && pr.Amount.Equal(key.Amount) {
			cp := *pr
			return &cp, false, nil
		}
	}
	defaults.ID = s.db.id()
	if defaults.RequestID == uuid.Nil {
		defaults.RequestID = uuid.New()
	}
	defaults.StudentID = key.StudentID
	defaults.OrganizationID = key.OrganizationID
	defaults.FeeTypeID = key.FeeTypeID
	defaults.Amount = key.Amount
	defaults.QueueNumber = key.QueueNumber
	s.db.requests = append(s.db.requests, &defaults)
	cp := defaults
	return &cp, true, nil
}

func (s memRequests) SetQRSignature(_ context.Context, id int64, signature string) error {
	for _, pr := range s.db.requests {
		if pr.ID == id {
			pr.QRSignature = signature
			return nil
		}
	}
	return apperrors.ErrPaymentRequestNotFound
}
