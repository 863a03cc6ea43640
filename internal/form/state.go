// Package form owns the capture form's state: the postal-code-driven
// cascade, unit selection, and the validation/submission pipeline. The UI
// layer holds one State value and mutates it exclusively through the
// transition methods here, so the dependency chain
// postalCode → lookup status → candidates → neighborhood stays auditable
// without a UI harness.
package form

import (
	"captura/internal/apiclient"
	"captura/internal/postal"
)

// LookupStatus tracks the postal-code sub-machine.
type LookupStatus string

const (
	StatusIdle     LookupStatus = "idle"
	StatusPending  LookupStatus = "pending"
	StatusResolved LookupStatus = "resolved"
	StatusNotFound LookupStatus = "not_found"
)

// State is the whole form. Derived fields (LookupStatus, Candidates,
// SelectedNeighborhood) are never written directly by the UI; they change
// only as side effects of the transitions in machine.go.
type State struct {
	// Postal cascade.
	PostalCode           string
	LookupStatus         LookupStatus
	Candidates           []postal.Entry
	SelectedNeighborhood string

	// Unit directory snapshot, fetched once per session. A failed fetch
	// leaves Units empty for the rest of the session.
	Units       []apiclient.Unit
	unitsLoaded bool

	// Unit selection. QueryText drives the autocomplete; SelectedUnit is a
	// weak reference into Units kept in sync one way: selecting overwrites
	// QueryText, typing past the selected name clears SelectedUnit.
	QueryText    string
	SelectedUnit *apiclient.Unit

	// Personal data, free-typed.
	FirstName      string
	LastName       string
	SecondLastName string
	Address        string
	Phone          string

	// generation guards in-flight lookups against staleness.
	generation int
}

// NewState returns a fresh session: every field at its default, lookup idle.
func NewState() *State {
	return &State{LookupStatus: StatusIdle}
}

// Reset discards the session, keeping only the already-fetched unit
// directory snapshot.
func (s *State) Reset() {
	units, loaded := s.Units, s.unitsLoaded
	gen := s.generation
	*s = State{LookupStatus: StatusIdle, Units: units, unitsLoaded: loaded}
	// keep counting up so a lookup in flight across the reset stays stale
	s.generation = gen + 1
}

// Municipality returns the resolved municipality display value, empty until
// the lookup resolves.
func (s *State) Municipality() string {
	if len(s.Candidates) == 0 {
		return ""
	}
	return s.Candidates[0].Municipality
}

// StateName returns the resolved state name, empty until the lookup
// resolves.
func (s *State) StateName() string {
	if len(s.Candidates) == 0 {
		return ""
	}
	return s.Candidates[0].State
}

// Neighborhoods lists the selectable neighborhood options.
func (s *State) Neighborhoods() []string {
	return postal.Neighborhoods(s.Candidates)
}
