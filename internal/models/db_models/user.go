package db_models

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusExpired   UserStatus = "expired"
)

type User struct {
	BaseModel
	DisplayName  string
	Email        string     `gorm:"uniqueIndex"`
	PasswordHash string
	Role         UserRole   `gorm:"size:16;default:'user';index"`
	Status       UserStatus `gorm:"size:16;default:'active';index"`
	// StatusReason holds the admin-supplied reason for the latest
	// suspension; cleared on reactivation.
	StatusReason string

	// Access window, unix seconds. Nil means no expiry has been set.
	AccessExpiresAt    *int64
	AccessDurationDays int `gorm:"default:60"`

	Locale               string `gorm:"size:8;default:'en'"`
	Theme                string `gorm:"size:16;default:'light'"`
	NotificationsEnabled bool   `gorm:"default:true"`
	NotificationTime     string `gorm:"size:5;default:'09:00'"`

	Progress *JourneyProgress `gorm:"foreignKey:UserID"`
	Answers  []DayAnswer      `gorm:"foreignKey:UserID"`
	Payments []Payment        `gorm:"foreignKey:UserID"`
}
