package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// promoter is the slice of PostService the sweep needs.
type promoter interface {
	PromoteScheduled(ctx context.Context, now time.Time) (int, error)
}

// sweepTimeout bounds one promotion pass so a stalled store call cannot hold
// the job slot forever.
const sweepTimeout = 30 * time.Second

// SchedulerService runs the periodic sweep that publishes scheduled posts
// whose publish time has arrived. Singleton mode plus the running flag keep
// sweeps from overlapping even if a pass outlives the interval.
type SchedulerService struct {
	scheduler gocron.Scheduler
	promoter  promoter
	interval  time.Duration
	now       func() time.Time
	running   atomic.Bool
}

func NewSchedulerService(p promoter, interval time.Duration) (*SchedulerService, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	s := &SchedulerService{
		scheduler: scheduler,
		promoter:  p,
		interval:  interval,
		now:       time.Now,
	}
	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.sweep),
		gocron.WithName("publish-scheduled-posts"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SchedulerService) Start() {
	log.Printf("scheduler: sweeping for due posts every %s", s.interval)
	s.scheduler.Start()
}

func (s *SchedulerService) Stop() error {
	log.Printf("scheduler: shutting down")
	return s.scheduler.Shutdown()
}

func (s *SchedulerService) sweep() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	defer s.running.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	count, err := s.promoter.PromoteScheduled(ctx, s.now().UTC())
	if err != nil {
		log.Printf("scheduler: sweep failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("scheduler: published %d scheduled post(s)", count)
	}
}
