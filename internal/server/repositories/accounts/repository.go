// Package accounts stores registered accounts in the login table.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
)

// Repository is the account store. Create returns common.ErrorAlreadyExists
// when the username is taken; GetByUsername returns common.ErrorNotFound for
// an unknown username.
type Repository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}
