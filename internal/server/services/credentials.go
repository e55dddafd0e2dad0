// Package services contains server-side business logic: the credential
// verifier and the address usage tracker.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/cryptox"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/dmitrijs2005/addrkeeper/internal/server/config"
	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/repomanager"
)

// CredentialService registers accounts and checks username/password pairs.
//
// Errors follow the common taxonomy: ErrEmptyField, ErrDuplicate,
// ErrHashFailure, ErrStore and ErrorUnauthorized. Unknown users and wrong
// passwords both yield ErrorUnauthorized.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	policy      cryptox.DigestPolicy
	logger      logging.Logger
}

// NewCredentialService constructs a CredentialService with an argon2id policy
// built from the server config.
func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *CredentialService {
	policy := cryptox.DefaultArgon2Policy()
	policy.Time = cfg.HashTime
	policy.Memory = cfg.HashMemoryKiB
	policy.Threads = cfg.HashThreads

	return &CredentialService{
		db:          db,
		repomanager: m,
		policy:      policy,
		logger:      l.With("module", "credential_service"),
	}
}

// Hash digests password with salt under the service's policy.
func (s *CredentialService) Hash(password string, salt []byte) (string, error) {
	return s.policy.Digest(password, salt)
}

// Register stores a new account with a freshly generated salt.
func (s *CredentialService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrEmptyField
	}

	salt := s.policy.NewSalt()
	digest, err := s.Hash(password, salt)
	if err != nil {
		return err
	}

	repo := s.repomanager.Accounts(s.db)
	err = repo.Create(ctx, &models.Account{UserName: username, Digest: digest, Salt: salt})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return common.ErrDuplicate
		}
		return fmt.Errorf("%w: %w", common.ErrStore, err)
	}

	s.logger.Info(ctx, "account registered", "username", username)
	return nil
}

// Authenticate returns nil when password matches the account's digest.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrEmptyField
	}

	repo := s.repomanager.Accounts(s.db)
	account, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// same amount of hashing work for unknown users
			_, _ = s.Hash(password, s.policy.NewSalt())
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("%w: %w", common.ErrStore, err)
	}

	candidate, err := s.Hash(password, account.Salt)
	if err != nil {
		return err
	}

	if !cryptox.EqualDigest(account.Digest, candidate) {
		return common.ErrorUnauthorized
	}

	return nil
}
