// Package apiclient is the capture front end's view of the persistence
// service: the unit directory read and the beneficiary create.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is used when configuration leaves the base URL empty.
const DefaultBaseURL = "http://localhost:4000"

// Unit is one organizational unit as served by GET /api/sm.
type Unit struct {
	ID       string `json:"id"`
	SM       string `json:"sm"`
	Sector   string `json:"sector"`
	Seccion  string `json:"seccion"`
	Fraccion string `json:"fraccion"`
}

// BeneficiaryPayload is the POST /api/beneficiarios body.
type BeneficiaryPayload struct {
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

// Beneficiario is the created record echoed back on success.
type Beneficiario struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Client talks to the persistence service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL; empty means the default local
// server.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}
}

// ListUnits fetches the full unit directory. Called once per form session.
func (c *Client) ListUnits(ctx context.Context) ([]Unit, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sm", nil)
	if err != nil {
		return nil, fmt.Errorf("build sm request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sm list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sm list: %s", readMessage(resp))
	}

	var units []Unit
	if err := json.NewDecoder(resp.Body).Decode(&units); err != nil {
		return nil, fmt.Errorf("decode sm list: %w", err)
	}
	return units, nil
}

// CreateBeneficiary submits one beneficiary record.
func (c *Client) CreateBeneficiary(ctx context.Context, payload BeneficiaryPayload) (*Beneficiario, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode beneficiario: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/beneficiarios", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build beneficiario request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create beneficiario: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create beneficiario: %s", readMessage(resp))
	}

	var created Beneficiario
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("decode created beneficiario: %w", err)
	}
	return &created, nil
}

// readMessage extracts the server's {"message"} envelope, falling back to
// the status line.
func readMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return resp.Status
}
