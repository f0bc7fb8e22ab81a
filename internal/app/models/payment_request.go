package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRequestKey identifies a payment request for get-or-create
type PaymentRequestKey struct {
	StudentID      int64
	OrganizationID int64
	FeeTypeID      int64
	Amount         decimal.Decimal
	QueueNumber    string
}

// PaymentRequest is a pending charge a student presents at an organization booth
type PaymentRequest struct {
	ID             int64           `json:"id" db:"id"`
	RequestID      uuid.UUID       `json:"requestId" db:"request_id"` // Signed into the QR code
	StudentID      int64           `json:"studentId" db:"student_id"`
	OrganizationID int64           `json:"organizationId" db:"organization_id"`
	FeeTypeID      int64           `json:"feeTypeId" db:"fee_type_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	QueueNumber    string          `json:"queueNumber" db:"queue_number"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod" db:"payment_method"`
	Status         PaymentStatus   `json:"status" db:"status"`
	QRSignature    string          `json:"qrSignature" db:"qr_signature"`
	ExpiresAt      time.Time       `json:"expiresAt" db:"expires_at"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
