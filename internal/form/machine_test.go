package form

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"captura/internal/apiclient"
	"captura/internal/postal"
)

type MachineSuite struct {
	suite.Suite
	state *State
	dir   *postal.Directory
}

func (s *MachineSuite) SetupTest() {
	dir, err := postal.Load()
	s.Require().NoError(err)
	s.dir = dir
	s.state = NewState()
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineSuite))
}

// lookup runs the async half of the cascade synchronously, the way the TUI
// command does it.
func (s *MachineSuite) lookup(req LookupRequest) {
	s.state.ApplyLookup(req.Generation, s.dir.Lookup(req.Code))
}

func (s *MachineSuite) TestPostalCascade() {
	s.Run("short codes stay idle with no candidates", func() {
		for _, code := range []string{"", "0", "0100", "010"} {
			_, start := s.state.SetPostalCode(code)
			s.False(start)
			s.Equal(StatusIdle, s.state.LookupStatus)
			s.Empty(s.state.Candidates)
		}
	})

	s.Run("five digits goes pending and requests a lookup", func() {
		req, start := s.state.SetPostalCode("01000")
		s.True(start)
		s.Equal(StatusPending, s.state.LookupStatus)
		s.Equal("01000", req.Code)
	})

	s.Run("resolution fills candidates and defaults the neighborhood", func() {
		req, _ := s.state.SetPostalCode("01000")
		s.lookup(req)

		s.Equal(StatusResolved, s.state.LookupStatus)
		s.Equal(s.dir.Lookup("01000"), s.state.Candidates)
		s.Equal("Centro", s.state.SelectedNeighborhood)
		s.Equal("Cuauhtémoc", s.state.Municipality())
		s.Equal("Ciudad de México", s.state.StateName())
	})

	s.Run("unknown code resolves to not-found with everything cleared", func() {
		req, _ := s.state.SetPostalCode("99999")
		s.lookup(req)

		s.Equal(StatusNotFound, s.state.LookupStatus)
		s.Empty(s.state.Candidates)
		s.Empty(s.state.SelectedNeighborhood)
	})

	s.Run("deleting a digit resets synchronously", func() {
		req, _ := s.state.SetPostalCode("01000")
		s.lookup(req)

		_, start := s.state.SetPostalCode("0100")
		s.False(start)
		s.Equal(StatusIdle, s.state.LookupStatus)
		s.Empty(s.state.Candidates)
		s.Empty(s.state.SelectedNeighborhood)
	})
}

func (s *MachineSuite) TestInputSanitization() {
	_, _ = s.state.SetPostalCode("01-00-0 extra99")
	s.Equal("01000", s.state.PostalCode)

	_, _ = s.state.SetPostalCode("abc")
	s.Equal("", s.state.PostalCode)
}

func (s *MachineSuite) TestStaleLookupGuard() {
	s.Run("result for superseded code is discarded", func() {
		first, _ := s.state.SetPostalCode("01000")
		second, _ := s.state.SetPostalCode("02000")

		// first resolves late
		s.state.ApplyLookup(first.Generation, s.dir.Lookup(first.Code))
		s.Equal(StatusPending, s.state.LookupStatus)
		s.Empty(s.state.Candidates)

		s.state.ApplyLookup(second.Generation, s.dir.Lookup(second.Code))
		s.Equal(StatusResolved, s.state.LookupStatus)
		s.Equal("Santa Cruz Acayucan", s.state.SelectedNeighborhood)
		s.Equal("Azcapotzalco", s.state.Municipality())
	})

	s.Run("late result after dropping below five digits is discarded", func() {
		req, _ := s.state.SetPostalCode("01000")
		_, _ = s.state.SetPostalCode("0100")

		s.state.ApplyLookup(req.Generation, s.dir.Lookup(req.Code))
		s.Equal(StatusIdle, s.state.LookupStatus)
		s.Empty(s.state.Candidates)
	})
}

func (s *MachineSuite) TestNeighborhoodSelection() {
	req, _ := s.state.SetPostalCode("01000")
	s.lookup(req)

	s.True(s.state.SelectNeighborhood("Centro Histórico"))
	s.Equal("Centro Histórico", s.state.SelectedNeighborhood)

	s.False(s.state.SelectNeighborhood("Roma Norte"))
	s.Equal("Centro Histórico", s.state.SelectedNeighborhood)
}

func (s *MachineSuite) TestUnitSearch() {
	units := []apiclient.Unit{
		{ID: "1", SM: "UNIT-A", Sector: "3", Seccion: "12"},
		{ID: "2", SM: "UNIT-B", Sector: "7", Seccion: "40"},
		{ID: "3", SM: "Brigada Norte", Sector: "3", Seccion: "9"},
	}
	s.state.SetUnits(units, nil)

	s.Run("query matches name sector and section case-insensitively", func() {
		s.state.SetQuery("unit")
		s.Len(s.state.Matches(), 2)

		s.state.SetQuery("norte")
		s.Len(s.state.Matches(), 1)

		s.state.SetQuery("40")
		s.Require().Len(s.state.Matches(), 1)
		s.Equal("UNIT-B", s.state.Matches()[0].SM)
	})

	s.Run("results hidden until two characters of query", func() {
		s.state.SetQuery("u")
		s.False(s.state.ShowResults())
		s.state.SetQuery("un")
		s.True(s.state.ShowResults())
		s.state.SetQuery("  u  ")
		s.False(s.state.ShowResults())
	})

	s.Run("selecting pins the unit and snaps the query", func() {
		s.state.SetQuery("unit")
		s.state.SelectUnit(units[0])
		s.Equal("UNIT-A", s.state.QueryText)
		s.Require().NotNil(s.state.SelectedUnit)
		s.Equal("1", s.state.SelectedUnit.ID)
		s.False(s.state.ShowResults())
	})

	s.Run("typing past the selected name clears the selection", func() {
		s.state.SelectUnit(units[0])
		s.state.SetQuery("UNIT-A")
		s.NotNil(s.state.SelectedUnit)

		s.state.SetQuery("UNIT-AB")
		s.Nil(s.state.SelectedUnit)
	})
}

func (s *MachineSuite) TestDirectoryFetchFailure() {
	s.state.SetUnits(nil, assertError{})
	s.state.SetQuery("anything")
	s.Empty(s.state.Matches())
	s.True(s.state.ShowResults())
}

func (s *MachineSuite) TestReset() {
	units := []apiclient.Unit{{ID: "1", SM: "UNIT-A"}}
	s.state.SetUnits(units, nil)
	req, _ := s.state.SetPostalCode("01000")
	s.lookup(req)
	s.state.FirstName = "Ana"

	s.state.Reset()

	s.Equal(StatusIdle, s.state.LookupStatus)
	s.Empty(s.state.PostalCode)
	s.Empty(s.state.FirstName)
	s.Empty(s.state.Candidates)
	// directory snapshot survives the reset
	s.Equal(units, s.state.Units)

	// the lookup that was in flight before the reset stays stale
	s.state.ApplyLookup(req.Generation, s.dir.Lookup(req.Code))
	s.Equal(StatusIdle, s.state.LookupStatus)
}

type assertError struct{}

func (assertError) Error() string { return "directory fetch failed" }
