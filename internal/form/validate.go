package form

import (
	"regexp"
	"strings"

	pstrings "captura/pkg/platform/strings"
)

// Field keys for validation messages.
const (
	FieldUnit         = "sm"
	FieldFirstName    = "nombre"
	FieldLastName     = "apellidoPaterno"
	FieldSecondLast   = "apellidoMaterno"
	FieldPostalCode   = "postalCode"
	FieldNeighborhood = "colonia"
	FieldAddress      = "address"
	FieldPhone        = "phone"
)

// namePattern accepts letters (including the accented Latin set) and spaces.
var namePattern = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ ]+$`)

// Validate applies every per-field rule to the current state and returns a
// field → message map; an empty map means the form can be submitted. Each
// rule is a pure predicate over the field's current value, so callers can
// re-run this on every change for inline display and once more at submit.
func Validate(s *State) map[string]string {
	errs := make(map[string]string)

	if s.SelectedUnit == nil || s.SelectedUnit.SM == "" {
		errs[FieldUnit] = "Selecciona una SM del listado."
	}

	checkName(errs, FieldFirstName, s.FirstName)
	checkName(errs, FieldLastName, s.LastName)
	checkName(errs, FieldSecondLast, s.SecondLastName)

	if len(s.PostalCode) != 5 {
		errs[FieldPostalCode] = "El código postal debe tener 5 dígitos."
	}

	if !neighborhoodValid(s) {
		errs[FieldNeighborhood] = "Selecciona una colonia válida."
	}

	if len(strings.TrimSpace(s.Address)) < 8 {
		errs[FieldAddress] = "La dirección debe tener al menos 8 caracteres."
	}

	if len(pstrings.Digits(s.Phone)) != 10 {
		errs[FieldPhone] = "El teléfono debe tener 10 dígitos."
	}

	return errs
}

func checkName(errs map[string]string, field, value string) {
	trimmed := strings.TrimSpace(value)
	if len([]rune(trimmed)) < 2 {
		errs[field] = "Debe tener al menos 2 caracteres."
		return
	}
	if !namePattern.MatchString(trimmed) {
		errs[field] = "Solo letras y espacios."
	}
}

func neighborhoodValid(s *State) bool {
	if s.SelectedNeighborhood == "" {
		return false
	}
	for _, n := range s.Neighborhoods() {
		if n == s.SelectedNeighborhood {
			return true
		}
	}
	return false
}
