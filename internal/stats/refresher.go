package stats

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
)

// DefaultSchedule refreshes every 15 minutes.
const DefaultSchedule = "@every 15m"

const collectTimeout = 30 * time.Second

// Refresher keeps the latest successful Stats snapshot.
type Refresher struct {
	collector *Collector
	cron      *cron.Cron
	latest    atomic.Pointer[Stats]
	logger    logger.Logger

	initial sync.WaitGroup
	cancel  context.CancelFunc
}

// NewRefresher validates schedule (standard cron or a descriptor such as
// "@every 15m") and registers the refresh job. Nothing runs until Start.
func NewRefresher(collector *Collector, schedule string, log logger.Logger) (*Refresher, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if log == nil {
		log = logger.NewNop()
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	r := &Refresher{
		collector: collector,
		cron:      cron.New(cron.WithParser(parser), cron.WithChain(cron.Recover(cron.DefaultLogger))),
		logger:    log,
	}

	if _, err := r.cron.AddFunc(schedule, func() { r.Refresh(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid stats schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start starts the schedule and runs the first collection in the
// background, so a slow store never delays startup. Latest stays nil until
// that collection succeeds.
func (r *Refresher) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.initial.Add(1)
	go func() {
		defer r.initial.Done()
		r.Refresh(ctx)
	}()
	r.cron.Start()
	r.logger.Info("Stats refresher started", logger.Int("entries", len(r.cron.Entries())))
}

// Stop cancels the first collection if it is still running and waits for
// any running refresh to finish.
func (r *Refresher) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.initial.Wait()
	<-r.cron.Stop().Done()
	r.logger.Info("Stats refresher stopped")
}

// Refresh runs one collection. A failure keeps the previous snapshot.
func (r *Refresher) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, collectTimeout)
	defer cancel()

	s, err := r.collector.Collect(ctx)
	if err != nil {
		r.logger.Warn("Stats collection failed", logger.Error(err))
		return
	}
	r.latest.Store(s)
	r.logger.Debug("Stats refreshed",
		logger.Int("jobs", s.TotalJobs),
		logger.Int("locations", s.TotalLocations),
		logger.Int("agencies", s.TotalAgencies),
	)
}

// Latest returns the most recent snapshot, or nil before the first success.
func (r *Refresher) Latest() *Stats {
	return r.latest.Load()
}
