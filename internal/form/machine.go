package form

import (
	"strings"

	"captura/internal/apiclient"
	"captura/internal/postal"
	pstrings "captura/pkg/platform/strings"
)

// LookupRequest identifies one postal-code lookup. The generation is echoed
// back through ApplyLookup so results for a code the user has since edited
// are discarded instead of overwriting newer state.
type LookupRequest struct {
	Generation int
	Code       string
}

// SetPostalCode stores the sanitized postal code and drives the cascade.
// Input is reduced to digits and truncated to five characters before being
// stored. Dropping below five digits resets the cascade synchronously; the
// returned bool reports whether a lookup should be started.
func (s *State) SetPostalCode(raw string) (LookupRequest, bool) {
	code := pstrings.Digits(raw)
	if len(code) > 5 {
		code = code[:5]
	}
	s.PostalCode = code

	// Any transition invalidates whatever lookup is in flight.
	s.generation++

	if len(code) != 5 {
		s.LookupStatus = StatusIdle
		s.Candidates = nil
		s.SelectedNeighborhood = ""
		return LookupRequest{}, false
	}

	s.LookupStatus = StatusPending
	return LookupRequest{Generation: s.generation, Code: code}, true
}

// ApplyLookup resolves a pending lookup. Results carrying a stale generation
// are ignored wholesale.
func (s *State) ApplyLookup(generation int, entries []postal.Entry) {
	if generation != s.generation {
		return
	}
	if len(entries) == 0 {
		s.LookupStatus = StatusNotFound
		s.Candidates = nil
		s.SelectedNeighborhood = ""
		return
	}
	s.LookupStatus = StatusResolved
	s.Candidates = entries
	s.SelectedNeighborhood = entries[0].Neighborhood
}

// SelectNeighborhood overrides the defaulted neighborhood. Only values drawn
// from the current candidates are accepted.
func (s *State) SelectNeighborhood(name string) bool {
	for _, n := range postal.Neighborhoods(s.Candidates) {
		if n == name {
			s.SelectedNeighborhood = name
			return true
		}
	}
	return false
}

// SetUnits installs the session's unit directory snapshot. A fetch error
// leaves the snapshot empty: the search then shows no matches for the rest
// of the session rather than surfacing an error.
func (s *State) SetUnits(units []apiclient.Unit, err error) {
	s.unitsLoaded = true
	if err != nil {
		s.Units = nil
		return
	}
	s.Units = units
}

// SetQuery stores the free-typed unit search text. Editing away from the
// selected unit's name drops the selection.
func (s *State) SetQuery(text string) {
	s.QueryText = text
	if s.SelectedUnit != nil && text != s.SelectedUnit.SM {
		s.SelectedUnit = nil
	}
}

// SelectUnit pins a unit and snaps the query text to its display name.
func (s *State) SelectUnit(u apiclient.Unit) {
	unit := u
	s.SelectedUnit = &unit
	s.QueryText = u.SM
}

// Matches filters the directory snapshot: a unit matches when its name,
// sector, or section contains the trimmed query as a case-insensitive
// substring.
func (s *State) Matches() []apiclient.Unit {
	query := strings.ToLower(strings.TrimSpace(s.QueryText))
	if query == "" {
		return s.Units
	}
	var matches []apiclient.Unit
	for _, u := range s.Units {
		if strings.Contains(strings.ToLower(u.SM), query) ||
			strings.Contains(strings.ToLower(u.Sector), query) ||
			strings.Contains(strings.ToLower(u.Seccion), query) {
			matches = append(matches, u)
		}
	}
	return matches
}

// ShowResults reports whether the autocomplete list should be visible:
// enough query text to be meaningful and nothing selected yet.
func (s *State) ShowResults() bool {
	return len(strings.TrimSpace(s.QueryText)) >= 2 && s.SelectedUnit == nil
}
