package postgre

import (
	"database/sql"
	"fmt"

	"shareit/internal/request/repository"
	"shareit/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed item request Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("request/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("request/repository/postgre.%s", method)
}
