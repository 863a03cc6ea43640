package beneficiary

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"captura/pkg/httperrors"
	pstrings "captura/pkg/platform/strings"
)

// Beneficiario is the persisted record. Field names follow the wire contract
// the capture front end was built against.
type Beneficiario struct {
	ID             string    `json:"id"`
	SMName         string    `json:"smName"`
	SMSector       string    `json:"smSector"`
	SMSeccion      string    `json:"smSeccion"`
	SMFraccion     string    `json:"smFraccion"`
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

// CreateRequest is the POST /api/beneficiarios body.
type CreateRequest struct {
	SMName         string `json:"smName"`
	SMSector       string `json:"smSector"`
	SMSeccion      string `json:"smSeccion"`
	SMFraccion     string `json:"smFraccion"`
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

// Validate mirrors the client-side rules for defense in depth. The client
// validates field by field; here a single coarse message per failure class
// is enough, since well-behaved clients never reach this path.
func (r CreateRequest) Validate() error {
	required := []string{
		r.SMName, r.SMSector, r.SMSeccion, r.SMFraccion,
		r.NombreCompleto, r.PostalCode, r.State, r.City,
		r.Colonia, r.Address, r.Phone,
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

// Record builds the persisted form of the request. The full name is stored
// upper-cased; every field is trimmed.
func (r CreateRequest) Record(id string, now time.Time) Beneficiario {
	return Beneficiario{
		ID:             id,
		SMName:         strings.TrimSpace(r.SMName),
		SMSector:       strings.TrimSpace(r.SMSector),
		SMSeccion:      strings.TrimSpace(r.SMSeccion),
		SMFraccion:     strings.TrimSpace(r.SMFraccion),
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
