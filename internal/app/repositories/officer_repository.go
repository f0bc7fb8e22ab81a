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

// officerNaturalKey is the unique constraint backing GetOrCreate
const officerNaturalKey = "officers_user_id_key"

var officerColumns = []string{
	"id", "user_id", "organization_id", "employee_id", "first_name", "last_name",
	"email", "phone_number", "role",
	"can_process_payments", "can_void_payments", "can_generate_reports",
}

// OfficerRepository handles officer database operations
type OfficerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOfficerRepository creates a new OfficerRepository
func NewOfficerRepository(db *pgxpool.Pool) *OfficerRepository {
	return &OfficerRepository{db: db, sb: newStatementBuilder()}
}

func scanOfficer(row pgx.Row) (*models.Officer, error) {
	o := &models.Officer{}
	err := row.Scan(&o.ID, &o.UserID, &o.OrganizationID, &o.EmployeeID, &o.FirstName, &o.LastName,
		&o.Email, &o.PhoneNumber, &o.Role,
		&o.CanProcessPayments, &o.CanVoidPayments, &o.CanGenerateReports)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GetByUserID retrieves the officer profile of a user
func (r *OfficerRepository) GetByUserID(ctx context.Context, userID int64) (*models.Officer, error) {
	query := r.sb.Select(officerColumns...).
		From("officers").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanOfficer, apperrors.ErrOfficerNotFound, "get officer by user")
}

// GetOrCreate returns the officer profile of userID, creating it from defaults when absent
func (r *OfficerRepository) GetOrCreate(ctx context.Context, userID int64, defaults models.Officer) (*models.Officer, bool, error) {
	officer, created, err := getOrCreate(ctx, officerNaturalKey,
		func(ctx context.Context) (*models.Officer, error) { return r.GetByUserID(ctx, userID) },
		func(ctx context.Context) (*models.Officer, error) {
			query := r.sb.Insert("officers").
				Columns("user_id", "organization_id", "employee_id", "first_name", "last_name",
					"email", "phone_number", "role",
					"can_process_payments", "can_void_payments", "can_generate_reports").
				Values(userID, defaults.OrganizationID, defaults.EmployeeID, defaults.FirstName, defaults.LastName,
					defaults.Email, defaults.PhoneNumber, defaults.Role,
					defaults.CanProcessPayments, defaults.CanVoidPayments, defaults.CanGenerateReports).
				Suffix("RETURNING " + joinColumns(officerColumns))
			return queryOne(ctx, r.db, query, scanOfficer, apperrors.ErrOfficerNotFound, "create officer")
		},
	)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error ensuring officer")
		return nil, false, err
	}
	return officer, created, nil
}

// Count returns the number of officers
func (r *OfficerRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "officers")
}
