package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/dmitrijs2005/addrkeeper/internal/server/config"
	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/repomanager"
)

// UsageService records address usage and ranks a user's addresses.
// It keeps no state between calls; concurrent increments are serialized by
// the store's upsert.
type UsageService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	defaultLimit int
	order        models.SortOrder
	logger       logging.Logger
}

func NewUsageService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *UsageService {
	limit := cfg.TopAddressesLimit
	if limit <= 0 {
		limit = common.DefaultTopAddressesLimit
	}
	limit = min(limit, common.MaxTopAddressesLimit)

	return &UsageService{
		db:           db,
		repomanager:  m,
		defaultLimit: limit,
		order:        models.ParseSortOrder(cfg.TopAddressesOrder),
		logger:       l.With("module", "usage_service"),
	}
}

// RecordUsage adds one use of address. The first caller to record an
// address becomes its owner; later callers only bump the counter.
func (s *UsageService) RecordUsage(ctx context.Context, username, address string) error {
	if username == "" || address == "" {
		return common.ErrEmptyField
	}

	repo := s.repomanager.Addresses(s.db)
	count, err := repo.Increment(ctx, username, address)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrStore, err)
	}

	s.logger.Debug(ctx, "address recorded", "username", username, "count", count)
	return nil
}

// TopAddresses returns up to limit addresses owned by username ordered by
// usage count. limit <= 0 selects the configured default and larger values
// are capped at common.MaxTopAddressesLimit. It never fails:
// an empty username, no rows or a store error all give an empty slice.
func (s *UsageService) TopAddresses(ctx context.Context, username string, limit int) []string {
	if username == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, common.MaxTopAddressesLimit)

	repo := s.repomanager.Addresses(s.db)
	addresses, err := repo.TopByUser(ctx, username, limit, s.order)
	if err != nil {
		s.logger.Warn(ctx, "top addresses query failed", "username", username, "error", err)
		return []string{}
	}
	if addresses == nil {
		return []string{}
	}

	return addresses
}
