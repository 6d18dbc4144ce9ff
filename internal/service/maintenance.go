package service

import (
	"time"

	"go.uber.org/zap"
)

// MaintenanceService handles periodic housekeeping of loaded stores
type MaintenanceService struct {
	registry *StoreRegistry
	idleTTL  time.Duration
	logger   *zap.Logger
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(registry *StoreRegistry, idleTTL time.Duration, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		registry: registry,
		idleTTL:  idleTTL,
		logger:   logger,
	}
}

// EvictIdleStores unloads stores that were not used within the idle TTL
func (s *MaintenanceService) EvictIdleStores() int {
	s.logger.Info("Starting eviction of idle stores", zap.Duration("idle_ttl", s.idleTTL))

	evicted := s.registry.EvictIdle(s.idleTTL)

	s.logger.Info("Eviction completed",
		zap.Int("evicted", evicted),
		zap.Int("loaded", s.registry.Len()),
	)
	return evicted
}
