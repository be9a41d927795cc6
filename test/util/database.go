// Package util provides database fixtures for integration tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/waflow/waflow/ent"
)

// sharedDSN starts the package-shared PostgreSQL exactly once: an
// external instance when CI_DATABASE_URL is set, a testcontainer
// otherwise. Tests never share state — each gets its own schema.
var sharedDSN = sync.OnceValues(func() (string, error) {
	if dsn := os.Getenv("CI_DATABASE_URL"); dsn != "" {
		return dsn, nil
	}

	ctx := context.Background()
	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("waflow_test"),
		postgres.WithUsername("waflow"),
		postgres.WithPassword("waflow"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("starting postgres container: %w", err)
	}
	return container.ConnectionString(ctx, "sslmode=disable")
})

// NewTestClient returns an ent client bound to a fresh schema on the
// shared instance. The schema (tables included, via ent's schema writer)
// is created here and dropped on test cleanup; production applies the
// committed SQL migrations instead.
func NewTestClient(t *testing.T) *ent.Client {
	t.Helper()
	ctx := context.Background()

	baseDSN, err := sharedDSN()
	require.NoError(t, err, "shared test database unavailable")

	schema := testSchemaName(t)
	admin, err := stdsql.Open("pgx", baseDSN)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)

	db, err := stdsql.Open("pgx", withSearchPath(baseDSN, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(8)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, client.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := admin.ExecContext(context.Background(), "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("dropping schema %s: %v", schema, err)
		}
		_ = client.Close()
		_ = db.Close()
		_ = admin.Close()
	})
	return client
}

// BaseDSN exposes the shared instance's connection string for tests
// that need a dedicated connection (e.g. the NOTIFY listener).
func BaseDSN(t *testing.T) string {
	t.Helper()
	dsn, err := sharedDSN()
	require.NoError(t, err, "shared test database unavailable")
	return dsn
}

// testSchemaName builds a collision-free identifier; the random suffix
// alone isolates parallel runs, the test name is only for debuggability.
func testSchemaName(t *testing.T) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generating schema suffix: %v", err)
	}

	name := strings.ToLower(t.Name())
	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)
	if len(mapped) > 32 {
		mapped = mapped[:32]
	}
	return fmt.Sprintf("wf_%s_%s", mapped, hex.EncodeToString(suffix))
}

// withSearchPath pins every pooled connection to the test schema.
func withSearchPath(dsn, schema string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "search_path=" + schema
}
