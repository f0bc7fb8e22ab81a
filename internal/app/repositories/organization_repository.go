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

// organizationNaturalKey is the unique constraint backing GetOrCreate
const organizationNaturalKey = "organizations_code_key"

var organizationColumns = []string{
	"id", "code", "name", "department", "description",
	"contact_email", "contact_phone", "booth_location",
}

// OrganizationRepository handles organization database operations
type OrganizationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanOrganization(row pgx.Row) (*models.Organization, error) {
	org := &models.Organization{}
	err := row.Scan(&org.ID, &org.Code, &org.Name, &org.Department, &org.Description,
		&org.ContactEmail, &org.ContactPhone, &org.BoothLocation)
	if err != nil {
		return nil, err
	}
	return org, nil
}

// GetByCode retrieves an organization by its unique code
func (r *OrganizationRepository) GetByCode(ctx context.Context, code string) (*models.Organization, error) {
	query := r.sb.Select(organizationColumns...).
		From("organizations").
		Where(squirrel.Eq{"code": code}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanOrganization, apperrors.ErrOrganizationNotFound, "get organization by code")
}

// Create inserts an organization and returns the stored row
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	query := r.sb.Insert("organizations").
		Columns("code", "name", "department", "description", "contact_email", "contact_phone", "booth_location").
		Values(org.Code, org.Name, org.Department, org.Description, org.ContactEmail, org.ContactPhone, org.BoothLocation).
		Suffix("RETURNING " + joinColumns(organizationColumns))
	return queryOne(ctx, r.db, query, scanOrganization, apperrors.ErrOrganizationNotFound, "create organization")
}

// GetOrCreate returns the organization with code, creating it from defaults when absent
func (r *OrganizationRepository) GetOrCreate(ctx context.Context, code string, defaults models.Organization) (*models.Organization, bool, error) {
	org, created, err := getOrCreate(ctx, organizationNaturalKey,
		func(ctx context.Context) (*models.Organization, error) { return r.GetByCode(ctx, code) },
		func(ctx context.Context) (*models.Organization, error) {
			defaults.Code = code
			return r.Create(ctx, &defaults)
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("code", code).Msg("Error ensuring organization")
		return nil, false, err
	}
	return org, created, nil
}

// Count returns the number of organizations
func (r *OrganizationRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "organizations")
}
