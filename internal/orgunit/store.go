package orgunit

import "context"

// Store reads the raw unit documents. The collection is read-only from the
// application's point of view; rows arrive through out-of-band imports.
type Store interface {
	ListDocuments(ctx context.Context) ([]Document, error)
}
