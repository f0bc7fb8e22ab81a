package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/unipay/internal/app/models"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/pkg/logger"
)

var paymentRequestColumns = []string{
	"id", "request_id", "student_id", "organization_id", "fee_type_id", "amount",
	"queue_number", "payment_method", "status", "qr_signature", "expires_at", "created_at",
}

// PaymentRequestRepository handles payment request database operations
type PaymentRequestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPaymentRequestRepository creates a new PaymentRequestRepository
func NewPaymentRequestRepository(db *pgxpool.Pool) *PaymentRequestRepository {
	return &PaymentRequestRepository{db: db, sb: newStatementBuilder()}
}

func scanPaymentRequest(row pgx.Row) (*models.PaymentRequest, error) {
	p := &models.PaymentRequest{}
	err := row.Scan(&p.ID, &p.RequestID, &p.StudentID, &p.OrganizationID, &p.FeeTypeID, &p.Amount,
		&p.QueueNumber, &p.PaymentMethod, &p.Status, &p.QRSignature, &p.ExpiresAt, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByKey retrieves the oldest payment request matching key
func (r *PaymentRequestRepository) GetByKey(ctx context.Context, key models.PaymentRequestKey) (*models.PaymentRequest, error) {
	query := r.sb.Select(paymentRequestColumns...).
		From("payment_requests").
		Where(squirrel.Eq{
			"student_id":      key.StudentID,
			"organization_id": key.OrganizationID,
			"fee_type_id":     key.FeeTypeID,
			"queue_number":    key.QueueNumber,
		}).
		Where("amount = ?", key.Amount).
		OrderBy("id ASC").
		Limit(1)
	return queryOne(ctx, r.db, query, scanPaymentRequest, apperrors.ErrPaymentRequestNotFound, "get payment request")
}

// GetOrCreate returns the payment request matching key, creating it from
// defaults when absent. A nil RequestID in defaults gets a fresh random UUID.
func (r *PaymentRequestRepository) GetOrCreate(ctx context.Context, key models.PaymentRequestKey, defaults models.PaymentRequest) (*models.PaymentRequest, bool, error) {
	// No natural-key constraint: every unique violation is a real conflict
	pr, created, err := getOrCreate(ctx, "",
		func(ctx context.Context) (*models.PaymentRequest, error) { return r.GetByKey(ctx, key) },
		func(ctx context.Context) (*models.PaymentRequest, error) {
			requestID := defaults.RequestID
			if requestID == uuid.Nil {
				requestID = uuid.New()
			}
			query := r.sb.Insert("payment_requests").
				Columns("request_id", "student_id", "organization_id", "fee_type_id", "amount",
					"queue_number", "payment_method", "status", "qr_signature", "expires_at", "created_at").
				Values(requestID, key.StudentID, key.OrganizationID, key.FeeTypeID, key.Amount,
					key.QueueNumber, defaults.PaymentMethod, defaults.Status, defaults.QRSignature, defaults.ExpiresAt, time.Now()).
				Suffix("RETURNING " + joinColumns(paymentRequestColumns))
			return queryOne(ctx, r.db, query, scanPaymentRequest, apperrors.ErrPaymentRequestNotFound, "create payment request")
		},
	)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", key.StudentID).Str("queueNumber", key.QueueNumber).Msg("Error ensuring payment request")
		return nil, false, err
	}
	return pr, created, nil
}

// SetQRSignature stores the signature of a payment request, touching no other column
func (r *PaymentRequestRepository) SetQRSignature(ctx context.Context, id int64, signature string) error {
	sql, args, err := r.sb.Update("payment_requests").
		Set("qr_signature", signature).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set signature query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("paymentRequestID", id).Msg("Error executing set signature query")
		return fmt.Errorf("error setting qr signature: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaymentRequestNotFound
	}
	return nil
}

// Count returns the number of payment requests
func (r *PaymentRequestRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "payment_requests")
}
