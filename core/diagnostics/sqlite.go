package diagnostics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists records to a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS surface_nodes (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        session TEXT,
        house TEXT,
        ts INTEGER,
        heat TEXT,
        solar TEXT,
        tariff TEXT,
        npc REAL,
        record TEXT
    );`
	index := `CREATE INDEX IF NOT EXISTS surface_nodes_combination ON surface_nodes (house, heat, solar);`
	for _, stmt := range []string{schema, index} {
		if _, err := db.Exec(stmt); err != nil {
			if cerr := db.Close(); cerr != nil {
				return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
			}
			return nil, err
		}
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the record to the database.
func (s *SQLiteStore) Append(ctx context.Context, rec NodeRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO surface_nodes (session, house, ts, heat, solar, tariff, npc, record) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Session, rec.House, rec.Timestamp.UnixNano(), rec.Heat, rec.Solar, rec.Tariff, rec.Result.NPC, string(b))
	return err
}

// Query returns records matching q in insertion order.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]NodeRecord, error) {
	var args []any
	query := `SELECT record FROM surface_nodes WHERE 1=1`
	for _, f := range []struct {
		col, val string
	}{
		{"session", q.Session},
		{"house", q.House},
		{"heat", q.Heat},
		{"solar", q.Solar},
		{"tariff", q.Tariff},
	} {
		if f.val != "" {
			query += ` AND ` + f.col + ` = ?`
			args = append(args, f.val)
		}
	}
	query += ` ORDER BY id`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []NodeRecord
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var r NodeRecord
		if err := json.Unmarshal([]byte(data), &r); err != nil {
			return nil, fmt.Errorf("unmarshal record: %w", err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
