// Package tui is the terminal capture form. It owns a form.State value and
// funnels every keystroke through the state machine's transitions; all
// derived values rendered here come straight from the state.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"captura/internal/apiclient"
	"captura/internal/form"
	"captura/internal/postal"
)

// successDisplay is how long the confirmation banner stays up before the
// session resets.
const successDisplay = 1800 * time.Millisecond

// Field indexes in tab order.
const (
	fieldQuery = iota
	fieldNombre
	fieldPaterno
	fieldMaterno
	fieldPostal
	fieldColonia
	fieldAddress
	fieldPhone
	fieldCount
)

type unitsLoadedMsg struct {
	units []apiclient.Unit
	err   error
}

type lookupMsg struct {
	generation int
	entries    []postal.Entry
}

type submitDoneMsg struct{ err error }

type resetMsg struct{}

// Backend is the slice of the API client the form needs.
type Backend interface {
	ListUnits(ctx context.Context) ([]apiclient.Unit, error)
	CreateBeneficiary(ctx context.Context, payload apiclient.BeneficiaryPayload) (*apiclient.Beneficiario, error)
}

// Model is the bubbletea model for the capture form.
type Model struct {
	state     *form.State
	client    Backend
	directory *postal.Directory
	logger    *slog.Logger

	inputs        []textinput.Model
	focus         int
	resultCursor  int
	coloniaCursor int
	fieldErrs     map[string]string
	touched       map[string]bool
	success       bool
	submitting    bool
	quitting      bool
}

// NewModel builds the capture form.
func NewModel(client Backend, directory *postal.Directory, logger *slog.Logger) *Model {
	inputs := make([]textinput.Model, fieldCount)
	placeholders := []string{
		"Buscar SM (nombre, sector o sección)",
		"Nombre",
		"Apellido paterno",
		"Apellido materno",
		"Código postal",
		"", // colonia is a picker, not a text input
		"Dirección",
		"Teléfono (10 dígitos)",
	}
	for i := range inputs {
		inp := textinput.New()
		inp.Placeholder = placeholders[i]
		inp.Prompt = "> "
		inputs[i] = inp
	}
	inputs[fieldPostal].CharLimit = 5
	inputs[fieldPhone].CharLimit = 14
	inputs[fieldQuery].Focus()

	return &Model{
		state:     form.NewState(),
		client:    client,
		directory: directory,
		logger:    logger,
		inputs:    inputs,
		fieldErrs: map[string]string{},
		touched:   map[string]bool{},
	}
}

// Init fetches the unit directory once per session.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchUnits(), textinput.Blink)
}

func (m *Model) fetchUnits() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		units, err := m.client.ListUnits(ctx)
		return unitsLoadedMsg{units: units, err: err}
	}
}

// lookupCmd resolves a postal code. The generation rides along so stale
// results are dropped by the state machine on arrival.
func (m *Model) lookupCmd(req form.LookupRequest) tea.Cmd {
	return func() tea.Msg {
		return lookupMsg{generation: req.Generation, entries: m.directory.Lookup(req.Code)}
	}
}

// submitCmd sends one payload assembled on the event loop. The closure only
// touches the payload copy, never the live State, so edits made while the
// request is in flight cannot leak into it.
func (m *Model) submitCmd(payload apiclient.BeneficiaryPayload) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return submitDoneMsg{err: form.Submit(ctx, payload, m.client, m.logger)}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unitsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("unit directory fetch failed", "error", msg.err.Error())
		}
		m.state.SetUnits(msg.units, msg.err)
		return m, nil

	case lookupMsg:
		m.state.ApplyLookup(msg.generation, msg.entries)
		m.coloniaCursor = 0
		m.refreshFieldErrs()
		return m, nil

	case submitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			// already logged by the pipeline; the form stays editable
			return m, nil
		}
		m.success = true
		return m, tea.Tick(successDisplay, func(time.Time) tea.Msg { return resetMsg{} })

	case resetMsg:
		m.resetSession()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.success {
		// ignore input while the confirmation banner is up
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		if m.focus == fieldQuery && m.state.ShowResults() && msg.String() == "down" {
			matches := m.state.Matches()
			if m.resultCursor < len(matches)-1 {
				m.resultCursor++
			}
			return m, nil
		}
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		if m.focus == fieldQuery && m.state.ShowResults() && msg.String() == "up" {
			if m.resultCursor > 0 {
				m.resultCursor--
			}
			return m, nil
		}
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "enter":
		return m.handleEnter()

	case "left", "right":
		if m.focus == fieldColonia {
			m.cycleColonia(msg.String() == "right")
			return m, nil
		}

	case "ctrl+s":
		return m.startSubmit()
	}

	return m, m.updateFocusedInput(msg)
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.focus == fieldQuery && m.state.ShowResults() {
		matches := m.state.Matches()
		if m.resultCursor < len(matches) {
			m.state.SelectUnit(matches[m.resultCursor])
			m.inputs[fieldQuery].SetValue(m.state.QueryText)
			m.setFocus(fieldNombre)
		}
		return m, nil
	}
	if m.focus == fieldPhone {
		return m.startSubmit()
	}
	m.setFocus((m.focus + 1) % fieldCount)
	return m, nil
}

// startSubmit validates and assembles the payload synchronously on the
// event loop; only the finished payload crosses into the command goroutine.
func (m *Model) startSubmit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	m.syncState()

	if errs := form.Validate(m.state); len(errs) > 0 {
		for _, key := range fieldKeys {
			m.touched[key] = true
		}
		m.fieldErrs = errs
		return m, nil
	}

	m.fieldErrs = map[string]string{}
	m.submitting = true
	return m, m.submitCmd(form.BuildPayload(m.state))
}

func (m *Model) cycleColonia(forward bool) {
	options := m.state.Neighborhoods()
	if len(options) == 0 {
		return
	}
	if forward {
		m.coloniaCursor = (m.coloniaCursor + 1) % len(options)
	} else {
		m.coloniaCursor = (m.coloniaCursor + len(options) - 1) % len(options)
	}
	m.state.SelectNeighborhood(options[m.coloniaCursor])
	m.refreshFieldErrs()
}

// updateFocusedInput forwards the message to the focused text input and
// pushes the new value through the state machine.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus == fieldColonia {
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()

	switch m.focus {
	case fieldQuery:
		m.state.SetQuery(value)
		m.resultCursor = 0
	case fieldPostal:
		req, start := m.state.SetPostalCode(value)
		// reflect sanitization back into the widget
		if m.state.PostalCode != value {
			m.inputs[fieldPostal].SetValue(m.state.PostalCode)
		}
		if start {
			m.refreshFieldErrs()
			return tea.Batch(cmd, m.lookupCmd(req))
		}
	default:
		m.syncState()
	}
	m.refreshFieldErrs()
	return cmd
}

// refreshFieldErrs re-runs validation and keeps only the messages for
// fields the user has already visited, so errors appear on blur and clear
// as soon as the value is fixed.
func (m *Model) refreshFieldErrs() {
	errs := form.Validate(m.state)
	shown := make(map[string]string, len(m.touched))
	for key := range m.touched {
		if msg, ok := errs[key]; ok {
			shown[key] = msg
		}
	}
	m.fieldErrs = shown
}

// syncState copies the free-typed inputs into the state so validation and
// payload assembly read current values.
func (m *Model) syncState() {
	m.state.FirstName = m.inputs[fieldNombre].Value()
	m.state.LastName = m.inputs[fieldPaterno].Value()
	m.state.SecondLastName = m.inputs[fieldMaterno].Value()
	m.state.Address = m.inputs[fieldAddress].Value()
	m.state.Phone = m.inputs[fieldPhone].Value()
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.touched[fieldKeys[m.focus]] = true
	m.focus = i
	if i != fieldColonia {
		m.inputs[i].Focus()
	}
	m.syncState()
	m.refreshFieldErrs()
}

func (m *Model) resetSession() {
	m.state.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.success = false
	m.resultCursor = 0
	m.coloniaCursor = 0
	m.setFocus(fieldQuery)
	// after setFocus so the blurred field of the old session is forgotten
	m.touched = map[string]bool{}
	m.fieldErrs = map[string]string{}
}
