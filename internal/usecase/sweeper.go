package usecase

import (
	"context"
	"sync"
	"time"

	"solar-marketplace/internal/data/repository"

	"go.uber.org/zap"
)

// Sweeper periodically flips approved listings whose expiry has passed to
// inactive. Browse queries already filter on expires_at, so the sweep only
// reconciles stored state; nothing reads stale rows in between runs.
type Sweeper struct {
	repo     *repository.Repository
	interval time.Duration
	log      *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(repo *repository.Repository, interval time.Duration, log *zap.Logger) *Sweeper {
	return &Sweeper{
		repo:     repo,
		interval: interval,
		log:      log.With(zap.String("service", "sweeper")),
	}
}

// Start launches the background sweep loop. Safe to call once.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)

	s.log.Info("Listing expiry sweeper started", zap.Duration("interval", s.interval))
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.log.Info("Listing expiry sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	expired, err := s.repo.Listing.ExpireOverdue(ctx)
	if err != nil {
		s.log.Error("Expiry sweep failed", zap.Error(err))
		return
	}

	if expired > 0 {
		s.log.Info("Expired overdue listings", zap.Int64("count", expired))
	}
}
