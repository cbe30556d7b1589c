package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"portal_posvenda/internal/domain/entities"
	"portal_posvenda/internal/infrastructure/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidSLAConfig = errors.New("invalid sla config")
)

// ISLAConfigUseCase exposes the per-category SLA budgets.
type ISLAConfigUseCase interface {
	Get(category string) entities.SLAConfig
	GetAll() []entities.SLAConfig
	Update(ctx context.Context, cfg entities.SLAConfig) (entities.SLAConfig, error)
	HoursForStage(category string, stage entities.WarrantyStage) int
}

// SLAConfigStore keeps SLA budgets in memory, keyed by category.
//
// Unknown categories resolve to entities.FallbackSLAConfig, which is never
// written back into the store.
type SLAConfigStore struct {
	mu       sync.RWMutex
	configs  map[string]entities.SLAConfig
	ordering []string
	logger   *zap.Logger
}

var _ ISLAConfigUseCase = (*SLAConfigStore)(nil)

func NewSLAConfigStore(log *zap.Logger, seed []entities.SLAConfig) *SLAConfigStore {
	s := &SLAConfigStore{
		configs: make(map[string]entities.SLAConfig, len(seed)),
		logger:  logger.OrNop(log),
	}
	for _, c := range seed {
		s.Put(c)
	}
	return s
}

func (s *SLAConfigStore) Get(category string) entities.SLAConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.configs[category]; ok {
		return c
	}
	return entities.FallbackSLAConfig(category)
}

func (s *SLAConfigStore) GetAll() []entities.SLAConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.SLAConfig, 0, len(s.ordering))
	for _, category := range s.ordering {
		out = append(out, s.configs[category])
	}
	return out
}

// Put stores cfg without validating durations. TotalHours is always recomputed.
func (s *SLAConfigStore) Put(cfg entities.SLAConfig) entities.SLAConfig {
	cfg = cfg.WithTotal()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.configs[cfg.Category]; !exists {
		s.ordering = append(s.ordering, cfg.Category)
	}
	s.configs[cfg.Category] = cfg
	return cfg
}

// Update validates cfg and stores it.
func (s *SLAConfigStore) Update(_ context.Context, cfg entities.SLAConfig) (entities.SLAConfig, error) {
	cfg.Category = strings.TrimSpace(cfg.Category)
	if err := ValidateSLAConfig(cfg); err != nil {
		return entities.SLAConfig{}, err
	}

	stored := s.Put(cfg)
	s.logger.Info("[sla][usecase] config updated",
		zap.String("category", stored.Category),
		zap.Int("total_hours", stored.TotalHours),
	)
	return stored, nil
}

func (s *SLAConfigStore) HoursForStage(category string, stage entities.WarrantyStage) int {
	return s.Get(category).HoursForStage(stage)
}

func ValidateSLAConfig(cfg entities.SLAConfig) error {
	if strings.TrimSpace(cfg.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidSLAConfig)
	}
	fields := []struct {
		name  string
		value int
	}{
		{"analysis_hours", cfg.AnalysisHours},
		{"inspection_hours", cfg.InspectionHours},
		{"decision_hours", cfg.DecisionHours},
		{"execution_hours", cfg.ExecutionHours},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidSLAConfig, f.name)
		}
	}
	return nil
}
