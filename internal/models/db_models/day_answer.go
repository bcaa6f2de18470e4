package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DayKey string

const (
	DayKeyWelcome DayKey = "welcome"
	DayKeyDay1    DayKey = "day1"
	DayKeyDay2    DayKey = "day2"
	DayKeyDay3    DayKey = "day3"
)

// ValidDayKey reports whether k is one of the four program segments.
func ValidDayKey(k DayKey) bool {
	switch k {
	case DayKeyWelcome, DayKeyDay1, DayKeyDay2, DayKeyDay3:
		return true
	}
	return false
}

// DayAnswer stores one survey payload per (user, day) pair. Saving
// again fully replaces the payload.
type DayAnswer struct {
	BaseModel
	UserID  uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_day_answers_user_day"`
	DayKey  DayKey         `gorm:"size:16;uniqueIndex:idx_day_answers_user_day"`
	Answers datatypes.JSON `gorm:"type:jsonb;not null"`

	User User `gorm:"foreignKey:UserID"`
}
