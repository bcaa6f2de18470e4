package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"triday/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *db_models.Payment) error
	FindByProviderID(ctx context.Context, providerID string) (*db_models.Payment, error)
	// MarkFailed flags a pending payment whose checkout link could not
	// be created; paid rows are never downgraded.
	MarkFailed(ctx context.Context, providerID string) error
	// ConfirmApproved marks the payment paid and activates its user with
	// a fresh access window, all in one transaction. Returns false when
	// the payment was already paid (a second webhook delivery or a
	// client verification racing it), in which case nothing is written.
	ConfirmApproved(ctx context.Context, providerID string, payload []byte, accessDays int, now time.Time) (bool, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Insert(ctx context.Context, payment *db_models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByProviderID(ctx context.Context, providerID string) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "provider_payment_id = ?", providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) MarkFailed(ctx context.Context, providerID string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("provider_payment_id = ? AND status <> ?", providerID, db_models.PaymentStatusPaid).
		Update("status", db_models.PaymentStatusFailed).Error
}

func (r *paymentRepository) ConfirmApproved(ctx context.Context, providerID string, payload []byte, accessDays int, now time.Time) (bool, error) {
	activated := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payment db_models.Payment

		// Row lock serializes concurrent confirmations of the same
		// external id; the loser sees status=paid and backs off.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payment, "provider_payment_id = ?", providerID).Error
		if err != nil {
			return err
		}

		if payment.Status == db_models.PaymentStatusPaid {
			return nil
		}

		paidAt := now.Unix()
		updates := map[string]interface{}{
			"status":  db_models.PaymentStatusPaid,
			"paid_at": paidAt,
		}
		if len(payload) > 0 {
			updates["payload"] = payload
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}

		var user db_models.User
		if err := tx.First(&user, "id = ?", payment.UserID).Error; err != nil {
			return err
		}

		expiresAt := now.AddDate(0, 0, accessDays).Unix()
		user.Status = db_models.StatusActive
		user.StatusReason = ""
		user.AccessExpiresAt = &expiresAt
		user.AccessDurationDays = accessDays
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		rows := []db_models.AccessLog{
			{UserID: &user.ID, UserEmail: user.Email, EventType: db_models.EventPaymentConfirmed, EventDetail: providerID},
			{UserID: &user.ID, UserEmail: user.Email, EventType: db_models.EventAccessActivated, EventDetail: fmt.Sprintf("access window extended by %d days", accessDays)},
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		activated = true
		return nil
	})

	return activated, err
}
