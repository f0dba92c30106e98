package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "shareit", Password: "secret", DBName: "shareit"}
	want := "host=db port=5432 user=shareit password=secret dbname=shareit sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	cfg.SSLMode = "require"
	if got := cfg.DSN(); got != "host=db port=5432 user=shareit password=secret dbname=shareit sslmode=require" {
		t.Errorf("sslmode not applied: %q", got)
	}
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	applied, err := Migrate(context.Background(), db)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(applied) != 1 || applied[0] != "migrations/001_init.sql" {
		t.Errorf("unexpected applied list: %v", applied)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
