package beneficiary

import "context"

// Store persists beneficiary records. A create is a single atomic document
// insert; there is no partial-write state to recover from.
type Store interface {
	Create(ctx context.Context, record Beneficiario) error
}
