// Package registration persists the older registration records. It predates
// the beneficiary collection and survives alongside it; unifying the two is
// an open product question, so both endpoints stay independent.
package registration

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"captura/pkg/httperrors"
	pstrings "captura/pkg/platform/strings"
)

// Registration is the persisted record.
type Registration struct {
	ID             string    `json:"id"`
	SMName         string    `json:"smName"`
	NombreCompleto string    `json:"nombreCompleto"`
	PostalCode     string    `json:"postalCode"`
	State          string    `json:"state"`
	City           string    `json:"city"`
	Colonia        string    `json:"colonia"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateRequest is the POST /api/registrations body.
type CreateRequest struct {
	SMName         string `json:"smName"`
	NombreCompleto string `json:"nombreCompleto"`
	PostalCode     string `json:"postalCode"`
	State          string `json:"state"`
	City           string `json:"city"`
	Colonia        string `json:"colonia"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
}

var postalCodePattern = regexp.MustCompile(`^\d{5}$`)

// Rejection reasons for the server-side validation metric.
const (
	ReasonMissingFields = "missing_fields"
	ReasonPostalCode    = "postal_code"
	ReasonPhone         = "phone"
)

var reasonByMessage = map[string]string{
	"Todos los campos son obligatorios.": ReasonMissingFields,
	"Código postal inválido.":            ReasonPostalCode,
	"Teléfono inválido.":                 ReasonPhone,
}

// RejectReason classifies a Validate error for metrics labeling.
func RejectReason(err error) string {
	var coded *httperrors.Error
	if errors.As(err, &coded) {
		if reason, ok := reasonByMessage[coded.Message]; ok {
			return reason
		}
	}
	return "other"
}

// Validate applies the same mirror rules as the beneficiary endpoint.
func (r CreateRequest) Validate() error {
	required := []string{
		r.SMName, r.NombreCompleto, r.PostalCode, r.State,
		r.City, r.Colonia, r.Address, r.Phone,
	}
	for _, field := range required {
		if field == "" {
			return httperrors.New(httperrors.CodeBadRequest, "Todos los campos son obligatorios.")
		}
	}
	if !postalCodePattern.MatchString(r.PostalCode) {
		return httperrors.New(httperrors.CodeBadRequest, "Código postal inválido.")
	}
	if len(pstrings.Digits(r.Phone)) != 10 {
		return httperrors.New(httperrors.CodeBadRequest, "Teléfono inválido.")
	}
	return nil
}

// Record builds the persisted form of the request.
func (r CreateRequest) Record(id string, now time.Time) Registration {
	return Registration{
		ID:             id,
		SMName:         strings.TrimSpace(r.SMName),
		NombreCompleto: strings.ToUpper(strings.TrimSpace(r.NombreCompleto)),
		PostalCode:     strings.TrimSpace(r.PostalCode),
		State:          strings.TrimSpace(r.State),
		City:           strings.TrimSpace(r.City),
		Colonia:        strings.TrimSpace(r.Colonia),
		Address:        strings.TrimSpace(r.Address),
		Phone:          strings.TrimSpace(r.Phone),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
