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

// feeTypeNaturalKey is the unique constraint backing GetOrCreate
const feeTypeNaturalKey = "fee_types_org_name_term_key"

var feeTypeColumns = []string{
	"id", "organization_id", "name", "academic_year", "semester",
	"amount", "description", "applicable_year_levels",
}

// FeeTypeRepository handles fee type database operations
type FeeTypeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeTypeRepository creates a new FeeTypeRepository
func NewFeeTypeRepository(db *pgxpool.Pool) *FeeTypeRepository {
	return &FeeTypeRepository{db: db, sb: newStatementBuilder()}
}

func scanFeeType(row pgx.Row) (*models.FeeType, error) {
	f := &models.FeeType{}
	err := row.Scan(&f.ID, &f.OrganizationID, &f.Name, &f.AcademicYear, &f.Semester,
		&f.Amount, &f.Description, &f.ApplicableYearLevels)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// GetByKey retrieves a fee type by (organization, name, academic year, semester)
func (r *FeeTypeRepository) GetByKey(ctx context.Context, key models.FeeTypeKey) (*models.FeeType, error) {
	query := r.sb.Select(feeTypeColumns...).
		From("fee_types").
		Where(squirrel.Eq{
			"organization_id": key.OrganizationID,
			"name":            key.Name,
			"academic_year":   key.AcademicYear,
			"semester":        key.Semester,
		}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanFeeType, apperrors.ErrFeeTypeNotFound, "get fee type")
}

// GetOrCreate returns the fee type identified by key, creating it from defaults when absent
func (r *FeeTypeRepository) GetOrCreate(ctx context.Context, key models.FeeTypeKey, defaults models.FeeType) (*models.FeeType, bool, error) {
	fee, created, err := getOrCreate(ctx, feeTypeNaturalKey,
		func(ctx context.Context) (*models.FeeType, error) { return r.GetByKey(ctx, key) },
		func(ctx context.Context) (*models.FeeType, error) {
			query := r.sb.Insert("fee_types").
				Columns("organization_id", "name", "academic_year", "semester",
					"amount", "description", "applicable_year_levels").
				Values(key.OrganizationID, key.Name, key.AcademicYear, key.Semester,
					defaults.Amount, defaults.Description, defaults.ApplicableYearLevels).
				Suffix("RETURNING " + joinColumns(feeTypeColumns))
			return queryOne(ctx, r.db, query, scanFeeType, apperrors.ErrFeeTypeNotFound, "create fee type")
		},
	)
	if err != nil {
		logger.Error().Err(err).Int64("organizationID", key.OrganizationID).Str("name", key.Name).Msg("Error ensuring fee type")
		return nil, false, err
	}
	return fee, created, nil
}

// Count returns the number of fee types
func (r *FeeTypeRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "fee_types")
}
