package repository

import (
	"database/sql"
	"encoding/json"

	"voltstore/store"

	"github.com/pkg/errors"
)

// PostgresSnapshotRepo stores the blob in Postgres with the same key/value
// shape as the sqlite backend, for deployments that already run a database.
type PostgresSnapshotRepo struct {
	db  *sql.DB
	key string
}

func NewPostgresSnapshotRepository(conn *sql.DB, key string) (SnapshotRepository, error) {
	if conn == nil {
		return nil, errors.New("conn must be non-nil")
	}
	if err := conn.Ping(); err != nil {
		return nil, err
	}
	_, err := conn.Exec(`CREATE TABLE IF NOT EXISTS snapshots (key TEXT PRIMARY KEY, data TEXT NOT NULL)`)
	if err != nil {
		return nil, errors.Wrap(err, "create snapshots table")
	}
	return &PostgresSnapshotRepo{db: conn, key: key}, nil
}

func (r *PostgresSnapshotRepo) Load() (snap store.Snapshot, exists bool, err error) {
	var data string
	row := r.db.QueryRow(`SELECT data FROM snapshots WHERE key = $1`, r.key)
	if err = row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			return
		}
		err = errors.Wrap(err, "load snapshot")
		return
	}
	if err = json.Unmarshal([]byte(data), &snap); err != nil {
		err = errors.Wrap(err, "decode snapshot")
		return
	}
	exists = true
	return
}

func (r *PostgresSnapshotRepo) Save(snap store.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	_, err = r.db.Exec(`INSERT INTO snapshots (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`, r.key, string(data))
	return errors.Wrap(err, "save snapshot")
}
