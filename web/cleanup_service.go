package web

import (
	"context"
	"time"

	"research-graph/registry"

	"go.uber.org/zap"
)

// CleanupService expires idle chat sessions.
type CleanupService struct {
	store  *registry.Store
	logger *zap.Logger
}

// NewCleanupService creates a new cleanup service instance
func NewCleanupService(store *registry.Store, logger *zap.Logger) *CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleanupService{
		store:  store,
		logger: logger,
	}
}

// CleanupStaleSessions drops sessions idle for longer than maxAge and
// returns how many were removed.
func (cs *CleanupService) CleanupStaleSessions(maxAge time.Duration) int {
	removed := cs.store.SweepSessions(maxAge)
	papers, sessions := cs.store.Stats()

	if removed == 0 {
		cs.logger.Debug("No stale sessions found", zap.Int("sessions", sessions))
		return 0
	}
	cs.logger.Info("Stale session cleanup completed",
		zap.Int("sessions_deleted", removed),
		zap.Int("sessions_remaining", sessions),
		zap.Int("papers_registered", papers),
		zap.Duration("max_age", maxAge))
	return removed
}

// Run sweeps every interval until ctx is done.
func (cs *CleanupService) Run(ctx context.Context, interval, maxAge time.Duration) {
	if interval <= 0 || maxAge <= 0 {
		cs.logger.Info("Session cleanup disabled")
		return
	}

	cs.logger.Info("Starting session cleanup",
		zap.Duration("interval", interval),
		zap.Duration("max_age", maxAge))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cs.CleanupStaleSessions(maxAge)
		}
	}
}
