package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/dberrors"
)

// Repositories holds all the repository instances
type Repositories struct {
	OrganizationRepository   *OrganizationRepository
	CollegeRepository        *CollegeRepository
	CourseRepository         *CourseRepository
	UserRepository           *UserRepository
	OfficerRepository        *OfficerRepository
	StudentRepository        *StudentRepository
	FeeTypeRepository        *FeeTypeRepository
	PaymentRequestRepository *PaymentRequestRepository
}

// NewRepositories initializes all repositories. bcryptCost is used when
// account passwords are (re)set.
func NewRepositories(db *pgxpool.Pool, bcryptCost int) *Repositories {
	return &Repositories{
		OrganizationRepository:   NewOrganizationRepository(db),
		CollegeRepository:        NewCollegeRepository(db),
		CourseRepository:         NewCourseRepository(db),
		UserRepository:           NewUserRepository(db, bcryptCost),
		OfficerRepository:        NewOfficerRepository(db),
		StudentRepository:        NewStudentRepository(db),
		FeeTypeRepository:        NewFeeTypeRepository(db),
		PaymentRequestRepository: NewPaymentRequestRepository(db),
	}
}

// Counts returns the number of rows per seeded table
func (r *Repositories) Counts(ctx context.Context) (map[string]int64, error) {
	counters := []struct {
		table string
		count func(context.Context) (int64, error)
	}{
		{"organizations", r.OrganizationRepository.Count},
		{"colleges", r.CollegeRepository.Count},
		{"courses", r.CourseRepository.Count},
		{"users", r.UserRepository.Count},
		{"officers", r.OfficerRepository.Count},
		{"students", r.StudentRepository.Count},
		{"fee_types", r.FeeTypeRepository.Count},
		{"payment_requests", r.PaymentRequestRepository.Count},
	}

	counts := make(map[string]int64, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, err
		}
		counts[c.table] = n
	}
	return counts, nil
}

// newStatementBuilder returns a squirrel builder using postgres placeholders
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// getOrCreate looks a row up with find and inserts it with create when it is
// missing. A violation of naturalKey on insert means a concurrent writer got
// there first, so the row is looked up again. Any other unique violation is
// returned as apperrors.ErrDuplicateRecord. The bool reports whether create ran.
func getOrCreate[T any](
	ctx context.Context,
	naturalKey string,
	find func(context.Context) (*T, error),
	create func(context.Context) (*T, error),
) (*T, bool, error) {
	found, err := find(ctx)
	if err == nil {
		return found, false, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, false, err
	}

	created, err := create(ctx)
	if err == nil {
		return created, true, nil
	}
	if !dberrors.IsUniqueViolation(err) {
		return nil, false, err
	}
	if naturalKey == "" || !dberrors.IsDuplicateConstraintError(err, naturalKey) {
		constraint := dberrors.ConstraintName(err)
		return nil, false, apperrors.NewDuplicateError(
			fmt.Sprintf("duplicate value violates %s", constraint), constraint)
	}

	found, err = find(ctx)
	if err != nil {
		return nil, false, err
	}
	return found, false, nil
}

// queryOne runs a built query expected to return a single row and scans it.
// pgx.ErrNoRows maps to notFound.
func queryOne[T any](
	ctx context.Context,
	db *pgxpool.Pool,
	query squirrel.Sqlizer,
	scan func(pgx.Row) (*T, error),
	notFound error,
	what string,
) (*T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	item, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("error executing %s query: %w", what, err)
	}
	return item, nil
}

// countRows counts the rows of table
func countRows(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", table, err)
	}

	var n int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return n, nil
}

// joinColumns renders a column list for SELECT or RETURNING
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
