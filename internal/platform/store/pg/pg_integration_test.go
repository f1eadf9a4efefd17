//go:build integration_pg
// +build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres runs a bare postgres image; the first pull can be slow
func startPostgres(t *testing.T, ctx context.Context) string {
	t.Helper()

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "pcaob",
				"POSTGRES_PASSWORD": "pcaob",
				"POSTGRES_DB":       "pcaob",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	tc.CleanupContainer(t, c)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}

	ep, err := c.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	return "postgres://pcaob:pcaob@" + ep + "/pcaob?sslmode=disable"
}

func TestOpen_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: startPostgres(t, ctx), AppName: "pcaob-seed", MaxConns: 2}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	if _, err := p.Pool.Exec(ctx, `CREATE TABLE inspections (company TEXT NOT NULL, year INT NOT NULL, deficiency_rate DOUBLE PRECISION)`); err != nil {
		t.Fatalf("create: %v", err)
	}

	b := &pgx.Batch{}
	b.Queue(`INSERT INTO inspections VALUES ($1, $2, $3)`, "BDO USA", 2020, 0.5)
	b.Queue(`INSERT INTO inspections VALUES ($1, $2, $3)`, "Grant Thornton", 2021, nil)
	if err := p.Pool.SendBatch(ctx, b).Close(); err != nil {
		t.Fatalf("batch: %v", err)
	}

	type row struct {
		Company string
		Year    int
		Rate    *float64
	}
	rows, _ := p.Pool.Query(ctx, `SELECT company, year, deficiency_rate FROM inspections ORDER BY year`)
	got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[row])
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 2 || got[0].Rate == nil || *got[0].Rate != 0.5 || got[1].Rate != nil {
		t.Fatalf("rows = %+v", got)
	}

	var app string
	if err := p.Pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("application_name: %v", err)
	}
	if app != "pcaob-seed" {
		t.Fatalf("application_name = %q", app)
	}
}
