package addresses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/dbx"
	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Increment(ctx context.Context, username, address string) (int64, error) {
	query := `
		INSERT INTO addresses (address, username, address_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (address)
		DO UPDATE SET address_count = addresses.address_count + 1
		RETURNING address_count
	`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, address, username).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Get(ctx context.Context, address string) (*models.AddressUsage, error) {
	query :=
		`SELECT address, username, address_count FROM addresses
		 WHERE address = $1
		 `

	usage := &models.AddressUsage{}
	err := r.db.QueryRowContext(ctx, query, address).Scan(&usage.Address, &usage.UserName, &usage.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return usage, nil
}

// TopByUser returns at most limit addresses owned by username, ranked by
// usage count in the given order. Ties are broken by address.
func (r *PostgresRepository) TopByUser(ctx context.Context, username string, limit int, order models.SortOrder) ([]string, error) {
	query := `SELECT address FROM addresses WHERE username = $1 ORDER BY ` + orderClause(order) + ` LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, username, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var address string
		if err := rows.Scan(&address); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
