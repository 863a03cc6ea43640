package form

import (
	"context"
	"log/slog"
	"strings"

	"captura/internal/apiclient"
)

// Creator abstracts the create call so the pipeline can be exercised
// without a live server.
type Creator interface {
	CreateBeneficiary(ctx context.Context, payload apiclient.BeneficiaryPayload) (*apiclient.Beneficiario, error)
}

// BuildPayload assembles the canonical submission from authoritative state:
// the selected unit's attributes and the resolved location values, never the
// raw query text. Name parts are trimmed, upper-cased, and joined with
// single spaces.
func BuildPayload(s *State) apiclient.BeneficiaryPayload {
	nombre := strings.ToUpper(strings.TrimSpace(s.FirstName))
	paterno := strings.ToUpper(strings.TrimSpace(s.LastName))
	materno := strings.ToUpper(strings.TrimSpace(s.SecondLastName))

	var unit apiclient.Unit
	if s.SelectedUnit != nil {
		unit = *s.SelectedUnit
	}

	return apiclient.BeneficiaryPayload{
		SMName:         unit.SM,
		SMSector:       unit.Sector,
		SMSeccion:      unit.Seccion,
		SMFraccion:     unit.Fraccion,
		NombreCompleto: nombre + " " + paterno + " " + materno,
		PostalCode:     s.PostalCode,
		State:          s.StateName(),
		City:           s.Municipality(),
		Colonia:        s.SelectedNeighborhood,
		Address:        strings.TrimSpace(s.Address),
		Phone:          strings.TrimSpace(s.Phone),
	}
}

// Submit issues exactly one create request for an already-assembled
// payload. Callers validate and build the payload on the event loop before
// handing it off, so this function never reads State and is safe to run on
// a background goroutine. Transport or server failures are logged and
// returned; there is no retry and no user-facing recovery beyond the log
// line.
func Submit(ctx context.Context, payload apiclient.BeneficiaryPayload, client Creator, logger *slog.Logger) error {
	if _, err := client.CreateBeneficiary(ctx, payload); err != nil {
		logger.Warn("beneficiario submit failed", "error", err.Error())
		return err
	}
	return nil
}
