package services

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/dbx"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/dmitrijs2005/addrkeeper/internal/server/config"
	"github.com/dmitrijs2005/addrkeeper/internal/server/models"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/addresses"
)

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HashMemoryKiB = 8 * 1024 // keep tests fast
	return cfg
}

// fakeAccounts is an in-memory accounts.Repository that counts calls.
type fakeAccounts struct {
	mu       sync.Mutex
	rows     map[string]models.Account
	calls    int
	createFn func(*models.Account) error
	getErr   error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{rows: map[string]models.Account{}}
}

func (f *fakeAccounts) Create(ctx context.Context, a *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.createFn != nil {
		return f.createFn(a)
	}
	if _, ok := f.rows[a.UserName]; ok {
		return common.ErrorAlreadyExists
	}
	f.rows[a.UserName] = *a
	return nil
}

func (f *fakeAccounts) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	a, ok := f.rows[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

// fakeAddresses is an in-memory addresses.Repository that counts calls.
type fakeAddresses struct {
	calls     int
	incErr    error
	topOut    []string
	topErr    error
	lastLimit int
	lastOrder models.SortOrder
}

func (f *fakeAddresses) Increment(ctx context.Context, username, address string) (int64, error) {
	f.calls++
	if f.incErr != nil {
		return 0, f.incErr
	}
	return 1, nil
}

func (f *fakeAddresses) Get(ctx context.Context, address string) (*models.AddressUsage, error) {
	f.calls++
	return nil, common.ErrorNotFound
}

func (f *fakeAddresses) TopByUser(ctx context.Context, username string, limit int, order models.SortOrder) ([]string, error) {
	f.calls++
	f.lastLimit = limit
	f.lastOrder = order
	return f.topOut, f.topErr
}

type fakeRepoManager struct {
	a *fakeAccounts
	u *fakeAddresses
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(db dbx.DBTX) accounts.Repository     { return m.a }
func (m *fakeRepoManager) Addresses(db dbx.DBTX) addresses.Repository   { return m.u }

func newFakeCredentialService(t *testing.T, a *fakeAccounts) *CredentialService {
	t.Helper()
	return NewCredentialService(nil, &fakeRepoManager{a: a}, testConfig(), logging.Nop{})
}

func newFakeUsageService(t *testing.T, u *fakeAddresses, cfg *config.Config) *UsageService {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	return NewUsageService(nil, &fakeRepoManager{u: u}, cfg, logging.Nop{})
}
