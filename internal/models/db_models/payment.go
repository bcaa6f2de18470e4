package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment records one checkout attempt. ProviderPaymentID carries the
// provider's external id ("payos:<orderCode>"); its unique index is
// what keeps racing webhook and client-verification deliveries from
// recording the same payment twice.
type Payment struct {
	BaseModel
	ProviderPaymentID string        `gorm:"uniqueIndex"`
	UserID            uuid.UUID     `gorm:"type:uuid;index"`
	Status            PaymentStatus `gorm:"size:16;index"`
	AmountMinor       int64
	Currency          string `gorm:"size:3"`
	PaidAt            *int64

	// Raw provider payload for traceability.
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
}
