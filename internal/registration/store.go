package registration

import "context"

// Store persists registration records.
type Store interface {
	Create(ctx context.Context, record Registration) error
}
