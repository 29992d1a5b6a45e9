// calendar.go
//
// Month-view assembly: grid dates, holiday/weekend flags, and per-date
// activity buckets.

package services

import (
	"time"

	"github.com/kizunaworks/sasaeru/internal/calendar"
	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"gorm.io/gorm"
)

// CalendarDay is one rendered cell of the month grid.
type CalendarDay struct {
	Date       string            `json:"date"`
	InMonth    bool              `json:"in_month"`
	Weekend    bool              `json:"weekend"`
	Holiday    bool              `json:"holiday"`
	Activities []models.Activity `json:"activities"`
}

// CalendarMonth is the full month-view payload.
type CalendarMonth struct {
	Label         string        `json:"label"`
	Month         string        `json:"month"`
	PreviousMonth string        `json:"previous_month"`
	NextMonth     string        `json:"next_month"`
	DayNames      []string      `json:"day_names"`
	Days          []CalendarDay `json:"days"`
}

// MonthActivities builds the month view containing the given date. The
// activity fetch spans the whole visible grid, including leading and trailing
// days from adjacent months.
func MonthActivities(db *gorm.DB, month time.Time) (*CalendarMonth, error) {
	days := calendar.Days(month)
	first, last := days[0], days[len(days)-1]

	activities, err := activitiesInRange(db, first, last)
	if err != nil {
		return nil, err
	}

	buckets := utils.GroupBy(activities, func(a models.Activity) string {
		return calendar.DateKey(a.Date())
	})

	view := &CalendarMonth{
		Label:         calendar.MonthLabel(month),
		Month:         calendar.DateKey(month),
		PreviousMonth: calendar.DateKey(calendar.PreviousMonth(month)),
		NextMonth:     calendar.DateKey(calendar.NextMonth(month)),
		DayNames:      calendar.DayNames,
		Days:          make([]CalendarDay, 0, len(days)),
	}

	for _, day := range days {
		key := calendar.DateKey(day)
		dayActivities := buckets[key]
		if dayActivities == nil {
			dayActivities = []models.Activity{}
		}
		view.Days = append(view.Days, CalendarDay{
			Date:       key,
			InMonth:    calendar.SameMonth(day, month),
			Weekend:    calendar.IsWeekend(day),
			Holiday:    calendar.IsHoliday(day),
			Activities: dayActivities,
		})
	}

	return view, nil
}
