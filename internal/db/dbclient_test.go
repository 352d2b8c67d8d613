//go:build integration

package db_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ledgerscope/explorer-analytics/internal/config"
	"github.com/ledgerscope/explorer-analytics/internal/db"
	"github.com/ledgerscope/explorer-analytics/internal/db/model"
	"github.com/ledgerscope/explorer-analytics/testutil"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

const (
	pgUsername = "user"
	pgPassword = "password"
	pgDatabase = "test-ledger"

	// this version corresponds to docker tag for postgres
	// it should be in sync with postgres version used by the explorer ledger
	pgVersion = "16-alpine"
)

// ledger tables as created by the explorer ingestion side
const ledgerSchema = `
CREATE TABLE "transaction" (tx_id TEXT PRIMARY KEY, "timestamp" BIGINT NOT NULL);
CREATE TABLE native_txs (tx_id TEXT PRIMARY KEY, address TEXT NOT NULL, "timestamp" BIGINT NOT NULL, content JSONB NOT NULL);
CREATE TABLE evm_txs (tx_id TEXT PRIMARY KEY, sender TEXT NOT NULL, "timestamp" BIGINT NOT NULL);
CREATE TABLE n2e (tx_id TEXT PRIMARY KEY, "timestamp" BIGINT NOT NULL);
CREATE TABLE e2n (tx_id TEXT PRIMARY KEY, "timestamp" BIGINT NOT NULL)
`

var testDB *db.Database

// admin pool with write access, used for seeding and truncating tables
var adminPool *pgxpool.Pool

func TestMain(m *testing.M) {
	// first setup container with postgres
	dbConfig, cleanup, err := setupPostgresContainer()
	if err != nil {
		log.Fatalf("failed to setup postgres container: %v", err)
	}

	adminPool, err = setupAdminPool(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup admin pool: %v", err)
	}

	// apply ledger schema
	if err := applySchema(adminPool); err != nil {
		cleanup()
		log.Fatalf("failed to apply ledger schema: %v", err)
	}

	// using config from container initialize client used in tests
	testDB, err = setupClient(dbConfig)
	if err != nil {
		cleanup()
		log.Fatalf("failed to setup client: %v", err)
	}

	// integration tests run on this line
	code := m.Run()
	testDB.Close()
	adminPool.Close()
	cleanup()

	os.Exit(code)
}

// setupPostgresContainer setups container with postgres returning db credentials through config.DbConfig,
// cleanup function that MUST be called in the end to cleanup docker resources and an error if there is any
func setupPostgresContainer() (*config.DbConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	randomString, err := testutil.RandomSuffix(3)
	if err != nil {
		return nil, nil, err
	}

	// there can be only 1 container with the same name, so we add
	// random string in the end in case there is still old container running
	containerName := "postgres-integration-tests-db-" + randomString
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       containerName,
		Repository: "postgres",
		Tag:        pgVersion,
		Env: []string{
			"POSTGRES_USER=" + pgUsername,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		err := pool.Purge(resource)
		if err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	// get host port (randomly chosen) that is mapped to postgres port inside container
	hostPort, err := strconv.Atoi(resource.GetPort("5432/tcp"))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	cfg := &config.DbConfig{
		Host:          "localhost",
		Port:          hostPort,
		Username:      pgUsername,
		Password:      pgPassword,
		DbName:        pgDatabase,
		MaxRetryTimes: 10,
		RetryInterval: time.Second,
	}
	if err := cfg.Validate(); err != nil {
		cleanup()
		return nil, nil, err
	}

	// postgres restarts once after running init scripts, wait until it accepts queries
	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		p, err := pgxpool.New(ctx, cfg.DSN())
		if err != nil {
			return err
		}
		defer p.Close()
		return p.Ping(ctx)
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return cfg, cleanup, nil
}

func setupAdminPool(cfg *config.DbConfig) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return pgxpool.New(ctx, cfg.DSN())
}

func applySchema(pool *pgxpool.Pool) error {
	ctx := context.Background()
	for _, stmt := range strings.Split(ledgerSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return nil
}

func setupClient(cfg *config.DbConfig) (*db.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return db.New(ctx, *cfg)
}

func resetDatabase(t *testing.T) {
	_, err := adminPool.Exec(t.Context(), `TRUNCATE "transaction", native_txs, evm_txs, n2e, e2n`)
	require.NoError(t, err)
}

func insertTransaction(t *testing.T, txID string, timestamp int64) {
	_, err := adminPool.Exec(t.Context(),
		`INSERT INTO "transaction" (tx_id, "timestamp") VALUES ($1, $2)`, txID, timestamp)
	require.NoError(t, err)
}

func insertNativeTx(t *testing.T, doc model.NativeTxDocument) {
	_, err := adminPool.Exec(t.Context(),
		`INSERT INTO native_txs (tx_id, address, "timestamp", content) VALUES ($1, $2, $3, $4::jsonb)`,
		doc.TxHash, doc.Address, doc.Timestamp, string(doc.Content))
	require.NoError(t, err)
}

func insertEvmTx(t *testing.T, doc model.EvmTxDocument) {
	_, err := adminPool.Exec(t.Context(),
		`INSERT INTO evm_txs (tx_id, sender, "timestamp") VALUES ($1, $2, $3)`,
		doc.TxHash, doc.Sender, doc.Timestamp)
	require.NoError(t, err)
}

func insertBridgeEvent(t *testing.T, direction model.BridgeDirection, txID string, timestamp int64) {
	table, err := direction.Table()
	require.NoError(t, err)

	_, err = adminPool.Exec(t.Context(),
		fmt.Sprintf(`INSERT INTO %s (tx_id, "timestamp") VALUES ($1, $2)`, table), txID, timestamp)
	require.NoError(t, err)
}
