package beneficiary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"captura/pkg/platform/sentinel"
)

// PostgresStore persists beneficiary records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, record Beneficiario) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO beneficiarios (
			id, sm_name, sm_sector, sm_seccion, sm_fraccion,
			nombre_completo, postal_code, state, city, colonia,
			address, phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		record.ID, record.SMName, record.SMSector, record.SMSeccion, record.SMFraccion,
		record.NombreCompleto, record.PostalCode, record.State, record.City, record.Colonia,
		record.Address, record.Phone, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert beneficiario: %w", err)
	}
	return nil
}

// FindByID loads one record; used by integration tests to verify inserts.
func (s *PostgresStore) FindByID(ctx context.Context, id string) (*Beneficiario, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, sm_name, sm_sector, sm_seccion, sm_fraccion,
		       nombre_completo, postal_code, state, city, colonia,
		       address, phone, created_at, updated_at
		FROM beneficiarios WHERE id = $1`, id)

	var record Beneficiario
	err := row.Scan(
		&record.ID, &record.SMName, &record.SMSector, &record.SMSeccion, &record.SMFraccion,
		&record.NombreCompleto, &record.PostalCode, &record.State, &record.City, &record.Colonia,
		&record.Address, &record.Phone, &record.CreatedAt, &record.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find beneficiario: %w", err)
	}
	return &record, nil
}
