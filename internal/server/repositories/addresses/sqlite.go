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

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Increment(ctx context.Context, username, address string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO addresses (address, username, address_count) VALUES (?, ?, 1)
		ON CONFLICT(address) DO UPDATE SET address_count = addresses.address_count + 1
		RETURNING address_count
	`, address, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, address string) (*models.AddressUsage, error) {
	usage := &models.AddressUsage{}
	err := r.db.QueryRowContext(ctx,
		`SELECT address, username, address_count FROM addresses WHERE address = ?`, address).
		Scan(&usage.Address, &usage.UserName, &usage.Count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return usage, nil
}

func (r *SQLiteRepository) TopByUser(ctx context.Context, username string, limit int, order models.SortOrder) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT address FROM addresses WHERE username = ? ORDER BY `+orderClause(order)+` LIMIT ?`,
		username, limit)
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
