package db

import (
	"database/sql"
	"errors"
)

// GetBlob returns the named blob, or nil if it has never been written.
func GetBlob(dbh *sql.DB, name string) ([]byte, error) {
	var data []byte
	err := dbh.QueryRow(`SELECT data FROM blobs WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// PutBlob replaces the named blob in a single statement.
func PutBlob(dbh *sql.DB, name string, data []byte) error {
	_, err := dbh.Exec(`
		INSERT INTO blobs(name, data, updated_at) VALUES(?, ?, datetime('now'))
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, name, data)
	return err
}
