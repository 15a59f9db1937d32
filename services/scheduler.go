package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartRankReconciler runs a background job that periodically re-runs the
// full rank recompute. Concurrent claims can leave a rank computed from a
// stale points snapshot; the next pass heals it. The returned scheduler is
// shut down by the caller.
func (s *RankingService) StartRankReconciler(interval time.Duration) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := s.RecomputeRanks(ctx); err != nil {
				log.Printf("[Reconciler] rank recompute failed: %v", err)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
