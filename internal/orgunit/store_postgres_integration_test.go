//go:build integration

package orgunit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"captura/internal/orgunit"
	"captura/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *orgunit.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = orgunit.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "registros")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) seed(docs ...string) {
	ctx := context.Background()
	for _, doc := range docs {
		_, err := s.postgres.DB.ExecContext(ctx,
			`INSERT INTO registros (doc) VALUES ($1::jsonb)`, doc)
		s.Require().NoError(err)
	}
}

func (s *PostgresStoreSuite) TestListDocumentsEmpty() {
	docs, err := s.store.ListDocuments(context.Background())
	s.Require().NoError(err)
	s.Empty(docs)
}

// TestMixedCasingDocuments seeds rows the way the legacy import left them,
// with inconsistent field casing, and checks they resolve into units.
func (s *PostgresStoreSuite) TestMixedCasingDocuments() {
	s.seed(
		`{"sm": "UNIT-A", "sector": "3", "seccion": "12", "fraccion": "2"}`,
		`{"SM": "UNIT-B", "Sector": 4, "Seccion": 7, "Fraccion": 1}`,
		`{"Sm": "UNIT-C", "SECTOR": "5"}`,
		`{"otroCampo": "sin nombre de unidad"}`,
	)

	docs, err := s.store.ListDocuments(context.Background())
	s.Require().NoError(err)
	s.Len(docs, 4)

	units := orgunit.ResolveAll(docs)
	s.Require().Len(units, 3, "document without an SM name is dropped")

	byName := make(map[string]orgunit.Unit, len(units))
	for _, u := range units {
		byName[u.SM] = u
	}

	s.Equal("3", byName["UNIT-A"].Sector)
	s.Equal("12", byName["UNIT-A"].Seccion)
	s.Equal("2", byName["UNIT-A"].Fraccion)

	s.Equal("4", byName["UNIT-B"].Sector)
	s.Equal("7", byName["UNIT-B"].Seccion)
	s.Equal("1", byName["UNIT-B"].Fraccion)

	s.Equal("5", byName["UNIT-C"].Sector)
	s.Empty(byName["UNIT-C"].Seccion)
}

// TestKeyPriority checks that when a document carries the same field in
// several casings, the preferred spelling wins: uppercase for the SM name,
// lowercase for the rest.
func (s *PostgresStoreSuite) TestKeyPriority() {
	s.seed(`{"sm": "unit-a", "SM": "UNIT-A", "sector": "3", "Sector": "999"}`)

	docs, err := s.store.ListDocuments(context.Background())
	s.Require().NoError(err)
	s.Require().Len(docs, 1)

	unit := orgunit.Resolve(docs[0])
	s.Equal("UNIT-A", unit.SM)
	s.Equal("3", unit.Sector)
}

func (s *PostgresStoreSuite) TestDocumentIDsAssigned() {
	s.seed(`{"sm": "UNIT-A"}`, `{"sm": "UNIT-B"}`)

	docs, err := s.store.ListDocuments(context.Background())
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.NotEmpty(docs[0].ID)
	s.NotEmpty(docs[1].ID)
	s.NotEqual(docs[0].ID, docs[1].ID)
}
