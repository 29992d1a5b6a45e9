// dashboard.go
//
// Dashboard statistics assembled with a fan-out/join. Each branch is
// independent; a failed branch logs and contributes its zero value so the
// page still renders.

package services

import (
	"sync"
	"time"

	"github.com/kizunaworks/sasaeru/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardStats aggregates the dashboard counters and activity previews.
type DashboardStats struct {
	TotalSupporters      int64             `json:"total_supporters"`
	RegisteredSupporters int64             `json:"registered_supporters"`
	TotalServiceUsers    int64             `json:"total_service_users"`
	TotalActivities      int64             `json:"total_activities"`
	TodayActivities      []models.Activity `json:"today_activities"`
	WeekActivities       []models.Activity `json:"week_activities"`
}

// GetDashboardStats computes the dashboard in parallel as of now.
func GetDashboardStats(db *gorm.DB, log *zap.Logger, now time.Time) DashboardStats {
	stats := DashboardStats{
		TodayActivities: []models.Activity{},
		WeekActivities:  []models.Activity{},
	}

	count := func(dest *int64, name string, scope func(*gorm.DB) *gorm.DB) func() {
		return func() {
			if err := scope(db).Count(dest).Error; err != nil {
				log.Warn("dashboard count failed", zap.String("stat", name), zap.Error(err))
				*dest = 0
			}
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart, weekEnd := weekRange(today)

	branches := []func(){
		count(&stats.TotalSupporters, "total_supporters", func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.Supporter{})
		}),
		count(&stats.RegisteredSupporters, "registered_supporters", func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.Supporter{}).Where("status = ?", models.SupporterStatusRegistered)
		}),
		count(&stats.TotalServiceUsers, "total_service_users", func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.ServiceUser{})
		}),
		count(&stats.TotalActivities, "total_activities", func(db *gorm.DB) *gorm.DB {
			return db.Model(&models.Activity{})
		}),
		func() {
			activities, err := activitiesInRange(db, today, today)
			if err != nil {
				log.Warn("dashboard today activities failed", zap.Error(err))
				return
			}
			stats.TodayActivities = activities
		},
		func() {
			activities, err := activitiesInRange(db, weekStart, weekEnd)
			if err != nil {
				log.Warn("dashboard week activities failed", zap.Error(err))
				return
			}
			stats.WeekActivities = activities
		},
	}

	var wg sync.WaitGroup
	for _, branch := range branches {
		wg.Add(1)
		go func(run func()) {
			defer wg.Done()
			run()
		}(branch)
	}
	wg.Wait()

	return stats
}

// activitiesInRange fetches activities between from and to inclusive, with
// relations, in date then creation order.
func activitiesInRange(db *gorm.DB, from, to time.Time) ([]models.Activity, error) {
	var activities []models.Activity
	err := activityPreloads(db.Model(&models.Activity{})).
		Where("activity_date >= ? AND activity_date <= ?", from, to).
		Order("activity_date, created_at").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// weekRange returns the Monday-start week containing d.
func weekRange(d time.Time) (time.Time, time.Time) {
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	start := d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}
