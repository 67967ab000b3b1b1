package service

import (
	"context"
	"time"

	"spendit-receipts/internal/dto"

	"go.uber.org/zap"
)

const maxReasonLength = 50

// StoragePinger is the slice of the storage gateway the health reporter
// needs.
type StoragePinger interface {
	Available() bool
	Ping(ctx context.Context) error
}

// HealthService reports aggregate liveness. The service is healthy iff
// the database answers a ping within the configured timeout.
type HealthService struct {
	store       StoragePinger
	pingTimeout time.Duration
	version     string
	timeSource  TimeSource
	logger      *zap.Logger
}

func NewHealthService(store StoragePinger, pingTimeout time.Duration, version string, logger *zap.Logger) *HealthService {
	return &HealthService{
		store:       store,
		pingTimeout: pingTimeout,
		version:     version,
		timeSource:  defaultTimeSource{},
		logger:      logger,
	}
}

// NewHealthServiceWithDeps creates a HealthService with a custom time
// source for testing.
func NewHealthServiceWithDeps(store StoragePinger, pingTimeout time.Duration, version string, timeSource TimeSource, logger *zap.Logger) *HealthService {
	return &HealthService{
		store:       store,
		pingTimeout: pingTimeout,
		version:     version,
		timeSource:  timeSource,
		logger:      logger,
	}
}

// Check never fails; storage faults show up in the database field.
func (s *HealthService) Check(ctx context.Context) dto.HealthResponse {
	dbStatus := "not configured"

	if s.store.Available() {
		pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
		defer cancel()

		if err := s.store.Ping(pingCtx); err != nil {
			s.logger.Warn("Database ping failed", zap.Error(err))
			dbStatus = "error: " + truncate(err.Error(), maxReasonLength)
		} else {
			dbStatus = "connected"
		}
	}

	status := "degraded"
	if dbStatus == "connected" {
		status = "healthy"
	}

	return dto.HealthResponse{
		Status:    status,
		Timestamp: s.timeSource.Now().Format(time.RFC3339),
		Database:  dbStatus,
		Version:   s.version,
	}
}

func (s *HealthService) Ready() dto.ReadyResponse {
	return dto.ReadyResponse{
		Status:    "ready",
		Timestamp: s.timeSource.Now().Format(time.RFC3339),
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
