package services

import (
	"log"
	"time"

	"api/database"
	"api/metrics"
	"api/models"

	"github.com/go-co-op/gocron/v2"
)

// StartExpirySweeper starts the optional background sweep of stale pending
// duels. Lazy expiry on the read path is authoritative with or without it;
// the sweep only keeps the table tidy for deployments that want it. The
// pending-guarded update makes it safe against a concurrent accept.
func (s *DuelService) StartExpirySweeper() {
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Failed to start expiry sweeper: %v", err)
		return
	}
	sched.Start()

	_, err = sched.NewJob(
		gocron.DurationJob(s.Settings.SweepInterval),
		gocron.NewTask(func() {
			res := database.DB.Model(&models.Duel{}).
				Where("status = ? AND expires_at < ?", models.DuelStatusPending, time.Now().UTC()).
				Update("status", models.DuelStatusExpired)
			if res.Error != nil {
				log.Printf("Expiry sweep failed: %v", res.Error)
				return
			}
			if res.RowsAffected > 0 {
				metrics.DuelTransitions.WithLabelValues(string(models.DuelStatusExpired)).Add(float64(res.RowsAffected))
				log.Printf("Expired %d stale pending duels", res.RowsAffected)
			}
		}),
	)
	if err != nil {
		log.Printf("Failed to schedule expiry sweep: %v", err)
	}
}
