package registration

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists registration records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, record Registration) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO registrations (
			id, sm_name, nombre_completo, postal_code, state,
			city, colonia, address, phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		record.ID, record.SMName, record.NombreCompleto, record.PostalCode, record.State,
		record.City, record.Colonia, record.Address, record.Phone, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}
