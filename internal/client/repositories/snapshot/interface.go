package snapshot

import (
	"context"

	"github.com/wastewise/pickup/internal/client/models"
)

// Repository persists the last known Identity between runs. The stored
// snapshot is a cache, never a source of truth: the session layer always
// reconfirms it against the server and is the only writer.
//
// Load returns (nil, nil) when no snapshot is stored; absence is a
// normal state, not an error.
type Repository interface {
	Load(ctx context.Context) (*models.Identity, error)
	Save(ctx context.Context, id models.Identity) error
	Clear(ctx context.Context) error

	// ProfileComplete reports whether the cached account has finished
	// first-time profile setup. Defaults to true when nothing is stored,
	// so returning users are not rerouted through setup.
	ProfileComplete(ctx context.Context) (bool, error)
	SetProfileComplete(ctx context.Context, complete bool) error
}
