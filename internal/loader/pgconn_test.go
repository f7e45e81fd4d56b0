package loader

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestRenderedStringParsesAsKeywordValueDSN(t *testing.T) {
	connString, err := Render(fullConfig(), false)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	cfg, err := pgconn.ParseConfig(connString)
	if err != nil {
		t.Fatalf("pgconn.ParseConfig(%q) returned error: %v", connString, err)
	}

	if cfg.Database != "app" || cfg.User != "admin" || cfg.Password != "secret" {
		t.Fatalf("unexpected parsed config: database=%q user=%q password=%q", cfg.Database, cfg.User, cfg.Password)
	}
	if cfg.Port != 5432 {
		t.Fatalf("unexpected port: %d", cfg.Port)
	}
}
