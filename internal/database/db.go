package database

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (or creates) the finance database and applies the gastos
// table migration.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(createGastosTable); err != nil {
		log.Println("[database.Open] failed to create gastos table:", err)
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
