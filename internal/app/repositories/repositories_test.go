package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
)

// racedStore answers find from rows and fails create with createErr.
type racedStore struct {
	rows      []*models.Student
	finds     int
	creates   int
	createErr error
}

func (s *racedStore) find(context.Context) (*models.Student, error) {
	s.finds++
	if len(s.rows) == 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.rows[0], nil
}

func (s *racedStore) create(context.Context) (*models.Student, error) {
	s.creates++
	if s.createErr != nil {
		return nil, s.createErr
	}
	row := &models.Student{ID: 1}
	s.rows = append(s.rows, row)
	return row, nil
}

func TestGetOrCreateFindsExisting(t *testing.T) {
	st := &racedStore{rows: []*models.Student{{ID: 7}}}
	got, created, err := getOrCreate(context.Background(), studentNaturalKey, st.find, st.create)
	if err != nil || created || got.ID != 7 {
		t.Fatalf("got %+v created=%v err=%v", got, created, err)
	}
	if st.creates != 0 {
		t.Errorf("create should not run for an existing row")
	}
}

func TestGetOrCreateCreatesMissing(t *testing.T) {
	st := &racedStore{}
	got, created, err := getOrCreate(context.Background(), studentNaturalKey, st.find, st.create)
	if err != nil || !created || got.ID != 1 {
		t.Fatalf("got %+v created=%v err=%v", got, created, err)
	}
}

func TestGetOrCreateReselectsOnNaturalKeyRace(t *testing.T) {
	winner := &models.Student{ID: 42}
	st := &racedStore{createErr: &pgconn.PgError{Code: "23505", ConstraintName: studentNaturalKey}}
	find := func(ctx context.Context) (*models.Student, error) {
		// The concurrent insert becomes visible after our own insert failed.
		if st.creates > 0 {
			return winner, nil
		}
		return st.find(ctx)
	}

	got, created, err := getOrCreate(context.Background(), studentNaturalKey, find, st.create)
	if err != nil || created || got.ID != 42 {
		t.Fatalf("got %+v created=%v err=%v", got, created, err)
	}
}

func TestGetOrCreateReportsOtherUniqueConstraint(t *testing.T) {
	st := &racedStore{createErr: &pgconn.PgError{Code: "23505", ConstraintName: "students_student_id_number_key"}}

	_, _, err := getOrCreate(context.Background(), studentNaturalKey, st.find, st.create)
	if !errors.Is(err, apperrors.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("a duplicate id number must not surface as not found")
	}
	var ce *apperrors.CustomError
	if !errors.As(err, &ce) || ce.Details["constraint"] != "students_student_id_number_key" {
		t.Fatalf("expected constraint name in details, got %+v", ce)
	}
	if st.finds != 1 {
		t.Errorf("expected no re-select, find ran %d times", st.finds)
	}
}

func TestGetOrCreateWithoutNaturalKey(t *testing.T) {
	st := &racedStore{createErr: &pgconn.PgError{Code: "23505", ConstraintName: "payment_requests_request_id_key"}}
	_, _, err := getOrCreate(context.Background(), "", st.find, st.create)
	if !errors.Is(err, apperrors.ErrDuplicateRecord) {
		t.Fatalf("expected ErrDuplicateRecord, got %v", err)
	}
}

func TestGetOrCreatePassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	st := &racedStore{createErr: boom}
	if _, _, err := getOrCreate(context.Background(), studentNaturalKey, st.find, st.create); !errors.Is(err, boom) {
		t.Fatalf("expected create error, got %v", err)
	}

	failingFind := func(context.Context) (*models.Student, error) { return nil, boom }
	if _, _, err := getOrCreate(context.Background(), studentNaturalKey, failingFind, st.create); !errors.Is(err, boom) {
		t.Fatalf("expected find error, got %v", err)
	}
}
