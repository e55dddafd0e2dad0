// Package addresses stores address usage counters.
package addresses

import (
	"context"

	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
)

// Repository is the address usage store.
//
// Increment inserts the address with count 1, or adds one to the existing
// counter, as a single statement, and returns the resulting count. The stored
// owner is never changed by later increments.
type Repository interface {
	Increment(ctx context.Context, username, address string) (int64, error)
	Get(ctx context.Context, address string) (*models.AddressUsage, error)
	TopByUser(ctx context.Context, username string, limit int, order models.SortOrder) ([]string, error)
}

func orderClause(order models.SortOrder) string {
	if order == models.SortDescending {
		return "address_count DESC, address"
	}
	return "address_count ASC, address"
}
