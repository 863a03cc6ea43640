package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"captura/internal/form"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("125"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("35"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var fieldKeys = []string{
	form.FieldUnit,
	form.FieldFirstName,
	form.FieldLastName,
	form.FieldSecondLast,
	form.FieldPostalCode,
	form.FieldNeighborhood,
	form.FieldAddress,
	form.FieldPhone,
}

var fieldLabels = []string{
	"SM", "Nombre", "Apellido paterno", "Apellido materno",
	"Código postal", "Colonia", "Dirección", "Teléfono",
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.success {
		return successStyle.Render("✓ Registro guardado correctamente") + "\n" +
			dimStyle.Render("Preparando nueva captura...") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Captura de beneficiarios"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")

		if i == fieldColonia {
			b.WriteString(m.coloniaView())
		} else {
			b.WriteString(m.inputs[i].View())
		}
		b.WriteString("\n")

		if msg, ok := m.fieldErrs[fieldKeys[i]]; ok {
			b.WriteString(errorStyle.Render("  " + msg))
			b.WriteString("\n")
		}

		if i == fieldQuery {
			b.WriteString(m.resultsView())
		}
		if i == fieldPostal {
			b.WriteString(m.lookupView())
		}
	}

	if m.submitting {
		b.WriteString(dimStyle.Render("Enviando..."))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab/enter: siguiente · ←/→: colonia · ctrl+s: guardar · esc: salir"))
	b.WriteString("\n")
	return b.String()
}

// resultsView renders the SM autocomplete below the query field.
func (m *Model) resultsView() string {
	if !m.state.ShowResults() {
		return ""
	}
	matches := m.state.Matches()
	if len(matches) == 0 {
		return dimStyle.Render("  sin coincidencias") + "\n"
	}

	var b strings.Builder
	for i, u := range matches {
		if i >= 6 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... %d más", len(matches)-i)))
			b.WriteString("\n")
			break
		}
		line := fmt.Sprintf("  %s (sector %s, sección %s)", u.SM, u.Sector, u.Seccion)
		if i == m.resultCursor {
			line = selectedStyle.Render("›" + line[1:])
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// lookupView renders the cascade status under the postal code field.
func (m *Model) lookupView() string {
	switch m.state.LookupStatus {
	case form.StatusPending:
		return dimStyle.Render("  buscando...") + "\n"
	case form.StatusNotFound:
		return errorStyle.Render("  código postal no encontrado") + "\n"
	case form.StatusResolved:
		return dimStyle.Render(fmt.Sprintf("  %s, %s", m.state.Municipality(), m.state.StateName())) + "\n"
	default:
		return ""
	}
}

// coloniaView renders the neighborhood picker.
func (m *Model) coloniaView() string {
	options := m.state.Neighborhoods()
	if len(options) == 0 {
		return dimStyle.Render("  (se llena al resolver el código postal)")
	}

	parts := make([]string, len(options))
	for i, n := range options {
		if n == m.state.SelectedNeighborhood {
			parts[i] = selectedStyle.Render("[" + n + "]")
		} else {
			parts[i] = dimStyle.Render(n)
		}
	}
	return "  " + strings.Join(parts, "  ")
}
