// Package store owns database bootstrap shared by all Postgres-backed
// stores.
package store

import (
	"database/sql"
	"fmt"
)

// Schema is applied on startup. Statements are idempotent so restarts are
// safe; real migrations can replace this when the schema starts evolving.
const Schema = `
CREATE TABLE IF NOT EXISTS beneficiarios (
	id              UUID PRIMARY KEY,
	sm_name         TEXT NOT NULL,
	sm_sector       TEXT NOT NULL,
	sm_seccion      TEXT NOT NULL,
	sm_fraccion     TEXT NOT NULL,
	nombre_completo TEXT NOT NULL,
	postal_code     TEXT NOT NULL,
	state           TEXT NOT NULL,
	city            TEXT NOT NULL,
	colonia         TEXT NOT NULL,
	address         TEXT NOT NULL,
	phone           TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS registrations (
	id              UUID PRIMARY KEY,
	sm_name         TEXT NOT NULL,
	nombre_completo TEXT NOT NULL,
	postal_code     TEXT NOT NULL,
	state           TEXT NOT NULL,
	city            TEXT NOT NULL,
	colonia         TEXT NOT NULL,
	address         TEXT NOT NULL,
	phone           TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL,
	updated_at      TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS registros (
	id  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	doc JSONB NOT NULL
);
`

// CreateSchema applies the schema to the given database.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
