package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type JourneyStep string

const (
	StepContent     JourneyStep = "content"
	StepSurvey      JourneyStep = "survey"
	StepCelebration JourneyStep = "celebration"
)

type JourneyProgress struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CurrentDay    int           `gorm:"default:0"`
	CompletedDays pq.Int64Array `gorm:"type:integer[]"`
	CurrentStep   JourneyStep   `gorm:"size:16;default:'content'"`
	Streak        int           `gorm:"default:0"`
	// Calendar date of the most recent day completion; time of day is
	// irrelevant to the streak rule.
	LastCompletedDate *time.Time `gorm:"type:date"`

	User User `gorm:"foreignKey:UserID"`
}

// HasCompleted reports whether day is already in the completed set.
func (p *JourneyProgress) HasCompleted(day int) bool {
	for _, d := range p.CompletedDays {
		if int(d) == day {
			return true
		}
	}
	return false
}
