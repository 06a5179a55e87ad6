package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestSupportsRowLock(t *testing.T) {
	cases := map[string]bool{
		"postgres":   true,
		"PostgreSQL": true,
		"sqlite":     false,
		"":           false,
	}
	for dialect, want := range cases {
		if got := supportsRowLock(dialect); got != want {
			t.Fatalf("dialect %q want %v got %v", dialect, want, got)
		}
	}
}

func TestDBDialectNameDefaultsToSQLite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db should default to sqlite, got %s", got)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Fatalf("nil error is not a unique violation")
	}
	if !IsUniqueViolation(gorm.ErrDuplicatedKey) {
		t.Fatalf("gorm duplicated key should match")
	}
	if !IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("wrapped postgres 23505 should match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation should not match")
	}
	if !IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)")) {
		t.Fatalf("sqlite unique message should match")
	}
	if IsUniqueViolation(errors.New("database is locked")) {
		t.Fatalf("unrelated error should not match")
	}
}
