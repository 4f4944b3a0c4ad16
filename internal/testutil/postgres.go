package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/qolzam/jobly/internal/database/migrations"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/platform/config"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerCfg  config.PostgreSQLConfig
	containerErr  error
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresPassword = "postgres"
	postgresDatabase = "jobly_test"
)

// StartPostgres returns a migrated database for integration tests. Tests are
// skipped unless RUN_DB_TESTS=1. When POSTGRES_HOST is set in the environment
// or .env.test that server is used, otherwise a container is started.
func StartPostgres(t *testing.T) *postgres.Client {
	t.Helper()
	if !ShouldRunDatabaseTests() {
		t.Skip("Skipping PostgreSQL integration tests; set RUN_DB_TESTS=1 to enable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := config.LoadFromMap(withTestKeys(t, TestEnv(t)))
	require.NoError(t, err)
	pgCfg := cfg.Database.Postgres

	if _, external := TestEnv(t)["POSTGRES_HOST"]; !external {
		containerOnce.Do(func() {
			containerCfg, containerErr = startContainer(ctx)
		})
		require.NoError(t, containerErr)
		pgCfg = containerCfg
	}

	require.NoError(t, migrations.Up(postgres.URL(pgCfg)))

	client, err := postgres.NewClient(ctx, pgCfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	truncate(ctx, t, client)
	return client
}

// startContainer starts one container per test binary; the testcontainers
// reaper removes it when the process exits.
func startContainer(ctx context.Context) (config.PostgreSQLConfig, error) {
	req := testcontainers.ContainerRequest{
		Image:        postgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": postgresPassword,
			"POSTGRES_DB":       postgresDatabase,
		},
		WaitingFor: wait.NewLogStrategy("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return config.PostgreSQLConfig{}, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return config.PostgreSQLConfig{}, err
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return config.PostgreSQLConfig{}, err
	}

	return config.PostgreSQLConfig{
		Host:           host,
		Port:           port.Int(),
		Username:       "postgres",
		Password:       postgresPassword,
		Database:       postgresDatabase,
		SSLMode:        "disable",
		ConnectTimeout: 10,
		MaxOpenConns:   5,
	}, nil
}

func truncate(ctx context.Context, t *testing.T, client *postgres.Client) {
	t.Helper()
	_, err := client.DB().ExecContext(ctx, `TRUNCATE applications, users, jobs, companies RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to reset tables")
}

func withTestKeys(t *testing.T, env map[string]string) map[string]string {
	t.Helper()
	if env["JWT_PUBLIC_KEY"] == "" || env["JWT_PRIVATE_KEY"] == "" {
		pub, priv := GenerateECDSAKeyPairPEM(t)
		env["JWT_PUBLIC_KEY"] = pub
		env["JWT_PRIVATE_KEY"] = priv
	}
	return env
}

// MustExec runs a fixture statement.
func MustExec(t *testing.T, client *postgres.Client, query string, args ...interface{}) {
	t.Helper()
	_, err := client.DB().Exec(query, args...)
	require.NoError(t, err, fmt.Sprintf("fixture failed: %s", query))
}
