// Package progression holds the journey bookkeeping rules: which day
// numbers exist, how the completed-day set grows, and how the
// consecutive-day streak is computed. The streak rule lives here and
// nowhere else; every caller (server sync, day completion, clients)
// gets the same answer.
package progression

import (
	"time"

	"triday/internal/models/db_models"
	"triday/pkg/utils"
)

// Day 0 is the welcome segment, days 1..3 are the program days.
const (
	FirstDay  = 0
	TotalDays = 3
)

func ValidDay(day int) bool {
	return day >= FirstDay && day <= TotalDays
}

// DayKeyFor maps a day number to its answer segment key.
func DayKeyFor(day int) db_models.DayKey {
	switch day {
	case 1:
		return db_models.DayKeyDay1
	case 2:
		return db_models.DayKeyDay2
	case 3:
		return db_models.DayKeyDay3
	default:
		return db_models.DayKeyWelcome
	}
}

// NextStreak applies the streak rule for a completion happening today.
//
//	no prior completion        -> 1
//	exactly one day since last -> prev + 1
//	more than one day          -> 1
//	same day (or clock skew)   -> prev, floored at 1
func NextStreak(prev int, last *time.Time, today time.Time) int {
	if last == nil || last.IsZero() {
		return 1
	}

	gap := utils.WholeDaysBetween(*last, today)
	switch {
	case gap == 1:
		return prev + 1
	case gap > 1:
		return 1
	default:
		// Repeat completion on the same calendar day, or a clock
		// running behind the stored date. Neither breaks the chain.
		if prev < 1 {
			return 1
		}
		return prev
	}
}

// ApplyCompletion records "day completed today" on p. The completed
// set only ever grows; repeating a day is a no-op for the set but
// still refreshes the pointer, step, and streak fields.
func ApplyCompletion(p *db_models.JourneyProgress, day int, today time.Time) {
	if !p.HasCompleted(day) {
		p.CompletedDays = append(p.CompletedDays, int64(day))
	}

	p.Streak = NextStreak(p.Streak, p.LastCompletedDate, today)

	next := day + 1
	if next > TotalDays {
		next = TotalDays
	}
	p.CurrentDay = next
	p.CurrentStep = db_models.StepContent

	completed := utils.DateOnly(today)
	p.LastCompletedDate = &completed
}

// Defaults returns a fresh progress row for a user who has none yet.
func Defaults() db_models.JourneyProgress {
	return db_models.JourneyProgress{
		CurrentDay:    FirstDay,
		CompletedDays: []int64{},
		CurrentStep:   db_models.StepContent,
		Streak:        0,
	}
}
