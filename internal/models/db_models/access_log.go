package db_models

import "github.com/google/uuid"

const (
	EventUserRegistered    = "user_registered"
	EventUserLogin         = "user_login"
	EventDayCompleted      = "day_completed"
	EventAccessExpired     = "access_expired"
	EventAccessSuspended   = "access_suspended"
	EventAccessReactivated = "access_reactivated"
	EventAccessActivated   = "access_activated"
	EventPaymentConfirmed  = "payment_confirmed"
)

// AccessLog is the append-only audit trail. UserEmail is snapshotted
// so rows stay meaningful after a user is deleted.
type AccessLog struct {
	BaseModel
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	UserEmail   string     `gorm:"index"`
	EventType   string     `gorm:"size:32;index"`
	EventDetail string
}
