package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/auth"
	"github.com/yigit/unipay/internal/pkg/logger"
)

// userNaturalKey is the unique constraint backing GetOrCreate
const userNaturalKey = "users_username_key"

var userColumns = []string{
	"id", "username", "email", "password", "first_name", "last_name",
	"is_staff", "is_superuser", "is_active", "date_joined",
}

// UserRepository handles login account database operations
type UserRepository struct {
	db         *pgxpool.Pool
	sb         squirrel.StatementBuilderType
	bcryptCost int
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool, bcryptCost int) *UserRepository {
	return &UserRepository{
		db:         db,
		sb:         newStatementBuilder(),
		bcryptCost: bcryptCost,
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.IsStaff, &u.IsSuperuser, &u.IsActive, &u.DateJoined)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := r.sb.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		Limit(1)
	return queryOne(ctx, r.db, query, scanUser, apperrors.ErrUserNotFound, "get user by username")
}

// GetOrCreate returns the user with username, creating it from defaults when absent.
// A created user has no usable password until SetPassword is called.
func (r *UserRepository) GetOrCreate(ctx context.Context, username string, defaults models.User) (*models.User, bool, error) {
	user, created, err := getOrCreate(ctx, userNaturalKey,
		func(ctx context.Context) (*models.User, error) { return r.GetByUsername(ctx, username) },
		func(ctx context.Context) (*models.User, error) {
			query := r.sb.Insert("users").
				Columns("username", "email", "password", "first_name", "last_name",
					"is_staff", "is_superuser", "is_active", "date_joined").
				Values(username, defaults.Email, "", defaults.FirstName, defaults.LastName,
					defaults.IsStaff, defaults.IsSuperuser, true, time.Now()).
				Suffix("RETURNING " + joinColumns(userColumns))
			return queryOne(ctx, r.db, query, scanUser, apperrors.ErrUserNotFound, "create user")
		},
	)
	if err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error ensuring user")
		return nil, false, err
	}
	if created {
		logger.Debug().Int64("userID", user.ID).Str("username", username).Msg("User created")
	}
	return user, created, nil
}

// SetPassword hashes password and stores it for the user
func (r *UserRepository) SetPassword(ctx context.Context, userID int64, password string) error {
	hashed, err := auth.HashPasswordCost(password, r.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	sql, args, err := r.sb.Update("users").
		Set("password", hashed).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing set password query")
		return fmt.Errorf("error setting password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "users")
}
