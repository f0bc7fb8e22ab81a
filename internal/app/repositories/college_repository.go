package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/logger"
)

// Unique constraints backing GetOrCreate
const (
	collegeNaturalKey = "colleges_name_key"
	courseNaturalKey  = "courses_name_college_key"
)

var (
	collegeColumns = []string{"id", "name", "code", "description"}
	courseColumns  = []string{"id", "college_id", "name", "code", "description"}
)

// CollegeRepository handles college database operations
type CollegeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{db: db, sb: newStatementBuilder()}
}

func scanCollege(row pgx.Row) (*models.College, error) {
	c := &models.College{}
	if err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Description); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByName retrieves a college by its unique name
func (r *CollegeRepository) GetByName(ctx context.Context, name string) (*models.College, error) {
	query := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"name": name}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanCollege, apperrors.ErrCollegeNotFound, "get college by name")
}

// GetOrCreate returns the college named name, creating it from defaults when absent
func (r *CollegeRepository) GetOrCreate(ctx context.Context, name string, defaults models.College) (*models.College, bool, error) {
	college, created, err := getOrCreate(ctx, collegeNaturalKey,
		func(ctx context.Context) (*models.College, error) { return r.GetByName(ctx, name) },
		func(ctx context.Context) (*models.College, error) {
			query := r.sb.Insert("colleges").
				Columns("name", "code", "description").
				Values(name, defaults.Code, defaults.Description).
				Suffix("RETURNING " + joinColumns(collegeColumns))
			return queryOne(ctx, r.db, query, scanCollege, apperrors.ErrCollegeNotFound, "create college")
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Msg("Error ensuring college")
		return nil, false, err
	}
	return college, created, nil
}

// Count returns the number of colleges
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "colleges")
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: newStatementBuilder()}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	if err := row.Scan(&c.ID, &c.CollegeID, &c.Name, &c.Code, &c.Description); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByNameAndCollege retrieves a course by name within a college
func (r *CourseRepository) GetByNameAndCollege(ctx context.Context, name string, collegeID int64) (*models.Course, error) {
	query := r.sb.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"name": name, "college_id": collegeID}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanCourse, apperrors.ErrCourseNotFound, "get course")
}

// GetOrCreate returns the course (name, college), creating it from defaults when absent
func (r *CourseRepository) GetOrCreate(ctx context.Context, name string, collegeID int64, defaults models.Course) (*models.Course, bool, error) {
	course, created, err := getOrCreate(ctx, courseNaturalKey,
		func(ctx context.Context) (*models.Course, error) { return r.GetByNameAndCollege(ctx, name, collegeID) },
		func(ctx context.Context) (*models.Course, error) {
			query := r.sb.Insert("courses").
				Columns("college_id", "name", "code", "description").
				Values(collegeID, name, defaults.Code, defaults.Description).
				Suffix("RETURNING " + joinColumns(courseColumns))
			return queryOne(ctx, r.db, query, scanCourse, apperrors.ErrCourseNotFound, "create course")
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("name", name).Int64("collegeID", collegeID).Msg("Error ensuring course")
		return nil, false, err
	}
	return course, created, nil
}

// Count returns the number of courses
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "courses")
}
