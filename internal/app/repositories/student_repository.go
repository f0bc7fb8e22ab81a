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

// studentNaturalKey is the unique constraint backing GetOrCreate
const studentNaturalKey = "students_user_id_key"

var studentColumns = []string{
	"id", "user_id", "student_id_number", "first_name", "last_name", "middle_name",
	"email", "phone_number", "course_id", "college_id", "year_level",
	"academic_year", "semester",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db, sb: newStatementBuilder()}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.UserID, &s.StudentIDNumber, &s.FirstName, &s.LastName, &s.MiddleName,
		&s.Email, &s.PhoneNumber, &s.CourseID, &s.CollegeID, &s.YearLevel,
		&s.AcademicYear, &s.Semester)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByUserID retrieves the student profile of a user
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanStudent, apperrors.ErrStudentNotFound, "get student by user")
}

// GetOrCreate returns the student profile of userID, creating it from defaults when absent
func (r *StudentRepository) GetOrCreate(ctx context.Context, userID int64, defaults models.Student) (*models.Student, bool, error) {
	student, created, err := getOrCreate(ctx, studentNaturalKey,
		func(ctx context.Context) (*models.Student, error) { return r.GetByUserID(ctx, userID) },
		func(ctx context.Context) (*models.Student, error) {
			query := r.sb.Insert("students").
				Columns("user_id", "student_id_number", "first_name", "last_name", "middle_name",
					"email", "phone_number", "course_id", "college_id", "year_level",
					"academic_year", "semester").
				Values(userID, defaults.StudentIDNumber, defaults.FirstName, defaults.LastName, defaults.MiddleName,
					defaults.Email, defaults.PhoneNumber, defaults.CourseID, defaults.CollegeID, defaults.YearLevel,
					defaults.AcademicYear, defaults.Semester).
				Suffix("RETURNING " + joinColumns(studentColumns))
			return queryOne(ctx, r.db, query, scanStudent, apperrors.ErrStudentNotFound, "create student")
		},
	)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Str("studentID", defaults.StudentIDNumber).Msg("Error ensuring student")
		return nil, false, err
	}
	return student, created, nil
}

// Count returns the number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "students")
}
