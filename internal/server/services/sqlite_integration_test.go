package services_test

import (
	"context"
	"database/sql"
	"math"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/dmitrijs2005/addrkeeper/internal/server/config"
	"github.com/dmitrijs2005/addrkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/addrkeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db          *sql.DB
	m           repomanager.RepositoryManager
	credentials *services.CredentialService
	usage       *services.UsageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureDSN(t, filepath.Join(t.TempDir(), "services.db"), 1)
}

func newFixtureDSN(t *testing.T, dsn string, maxOpenConns int) *fixture {
	t.Helper()
	db, err := sql.Open(repomanager.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, m.RunMigrations(context.Background(), db))
	db.SetMaxOpenConns(maxOpenConns)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.HashMemoryKiB = 8 * 1024

	return &fixture{
		db:          db,
		m:           m,
		credentials: services.NewCredentialService(db, m, cfg, logging.Nop{}),
		usage:       services.NewUsageService(db, m, cfg, logging.Nop{}),
	}
}

func TestScenario_RegisterAuthenticateRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.credentials.Register(ctx, "alice", "secret1"))
	require.NoError(t, f.credentials.Authenticate(ctx, "alice", "secret1"))
	assert.ErrorIs(t, f.credentials.Authenticate(ctx, "alice", "wrong"), common.ErrorUnauthorized)
	assert.ErrorIs(t, f.credentials.Authenticate(ctx, "nobody", "secret1"), common.ErrorUnauthorized)
	assert.ErrorIs(t, f.credentials.Register(ctx, "alice", "secret1"), common.ErrDuplicate)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.usage.RecordUsage(ctx, "alice", "1 Main St"))
	}

	usage, err := f.m.Addresses(f.db).Get(ctx, "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", usage.Address)
	assert.Equal(t, "alice", usage.UserName)
	assert.Equal(t, int64(3), usage.Count)
}

func TestScenario_EmptyFieldsLeaveStoreUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.usage.RecordUsage(ctx, "", "x"), common.ErrEmptyField)
	assert.ErrorIs(t, f.usage.RecordUsage(ctx, "x", ""), common.ErrEmptyField)

	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM addresses`).Scan(&n))
	assert.Zero(t, n)
}

func TestScenario_TopAddressesAscending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for addr, n := range map[string]int{"a1": 3, "a2": 1, "a3": 5} {
		for i := 0; i < n; i++ {
			require.NoError(t, f.usage.RecordUsage(ctx, "alice", addr))
		}
	}

	assert.Equal(t, []string{"a2", "a1", "a3"}, f.usage.TopAddresses(ctx, "alice", 5))
	assert.Equal(t, []string{}, f.usage.TopAddresses(ctx, "", 5))
	assert.Equal(t, []string{}, f.usage.TopAddresses(ctx, "bob", 5))
}

// The default fixture funnels every statement through one connection; the
// WAL variant below runs the same load over a pool.
func TestScenario_ConcurrentRecordUsage(t *testing.T) {
	runConcurrentRecordUsage(t, newFixture(t))
}

func TestScenario_ConcurrentRecordUsage_PooledWAL(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "pooled.db") +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"
	f := newFixtureDSN(t, dsn, 8)

	runConcurrentRecordUsage(t, f)
	assert.Greater(t, f.db.Stats().MaxOpenConnections, 1)
}

func runConcurrentRecordUsage(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()

	// seed so the concurrent phase only increments
	require.NoError(t, f.usage.RecordUsage(ctx, "alice", "Station Sq"))

	const callers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := "alice"
			if i%2 == 1 {
				user = "bob"
			}
			if err := f.usage.RecordUsage(ctx, user, "Station Sq"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, callers, ok)
	usage, err := f.m.Addresses(f.db).Get(ctx, "Station Sq")
	require.NoError(t, err)
	assert.Equal(t, int64(1+callers), usage.Count)
	assert.Equal(t, "alice", usage.UserName)
}

func TestScenario_StoreClosed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Close())

	assert.ErrorIs(t, f.credentials.Register(ctx, "alice", "secret1"), common.ErrStore)
	assert.ErrorIs(t, f.credentials.Authenticate(ctx, "alice", "secret1"), common.ErrStore)
	assert.ErrorIs(t, f.usage.RecordUsage(ctx, "alice", "x"), common.ErrStore)
	assert.Equal(t, []string{}, f.usage.TopAddresses(ctx, "alice", 5))
}

func TestScenario_HugeTopLimitIsServed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.usage.RecordUsage(ctx, "alice", "1 Main St"))

	assert.Equal(t, []string{"1 Main St"}, f.usage.TopAddresses(ctx, "alice", math.MaxInt32))
}
