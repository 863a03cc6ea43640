package orgunit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PostgresStore reads unit documents from the registros table. The table
// mirrors the schemaless source collection with a jsonb doc column, so the
// import pipeline can load rows without agreeing on field casing first.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListDocuments(ctx context.Context) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, doc FROM registros ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list registros: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan registro: %w", err)
		}
		fields := make(map[string]any)
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("decode registro %s: %w", id, err)
		}
		docs = append(docs, Document{ID: id, Fields: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registros: %w", err)
	}
	return docs, nil
}
