// Package session owns the client-side authentication state: at most one
// Identity, its durable snapshot, and the reconciliation of optimistic
// local state against the server.
//
// # Reconciliation
//
// Local state is always provisional; server-confirmed state wins. The
// cached snapshot may populate the session immediately for latency
// hiding, but Bootstrap and Login both end with a mandatory round trip
// to /auth/me before the session is considered settled. Any error from
// that confirmation means "not authenticated" — identity and snapshot
// are cleared (Bootstrap) or rolled back (Login), never kept on trust.
//
// # Concurrency
//
// State-mutating operations (Bootstrap, Login, Logout, UpdateIdentity,
// MarkProfileComplete) perform network round trips and are guarded
// against overlapping invocations: a second call while one is in flight
// fails fast with ErrOperationInFlight instead of interleaving.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wastewise/pickup/internal/client/api"
	"github.com/wastewise/pickup/internal/client/models"
	"github.com/wastewise/pickup/internal/client/repositories/snapshot"
	"github.com/wastewise/pickup/internal/logging"
)

var (
	// ErrNotAuthenticated is returned by operations that require a
	// present identity, such as UpdateIdentity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrOperationInFlight is returned when a state-mutating operation
	// is invoked while another one has not finished yet.
	ErrOperationInFlight = errors.New("another session operation is in progress")
)

// State labels the session lifecycle phase.
type State string

const (
	StateBootstrapping   State = "bootstrapping"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Session is the single process-wide owner of the authenticated
// Identity. All mutation goes through its methods; there is no other
// writer of the snapshot repository.
type Session struct {
	client api.Client
	repo   snapshot.Repository
	log    logging.Logger

	inFlight atomic.Bool

	mu              sync.Mutex
	identity        *models.Identity
	loading         bool
	profileComplete bool
}

// New returns a Session in the bootstrapping state. Callers must run
// Bootstrap before relying on IsAuthenticated.
func New(client api.Client, repo snapshot.Repository, log logging.Logger) *Session {
	return &Session{
		client:          client,
		repo:            repo,
		log:             log,
		loading:         true,
		profileComplete: true,
	}
}

func (s *Session) begin() error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	return nil
}

func (s *Session) end() { s.inFlight.Store(false) }

// Identity returns a copy of the current identity, or false when
// unauthenticated.
func (s *Session) Identity() (models.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return models.Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated is derived from identity presence; there is no
// separately settable flag to drift out of sync.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// Loading reports whether Bootstrap has not settled yet.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// ProfileComplete reports whether the account has finished first-time
// profile setup. Only meaningful while authenticated.
func (s *Session) ProfileComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profileComplete
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.loading:
		return StateBootstrapping
	case s.identity == nil:
		return StateUnauthenticated
	default:
		return StateAuthenticated
	}
}

func (s *Session) setIdentity(id *models.Identity) {
	s.mu.Lock()
	s.identity = id
	s.mu.Unlock()
}

// clearLocal drops the in-memory identity and the durable snapshot.
func (s *Session) clearLocal(ctx context.Context) {
	s.setIdentity(nil)
	s.mu.Lock()
	s.profileComplete = true
	s.mu.Unlock()
	if err := s.repo.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear cached identity", "error", err)
	}
}

// persist refreshes the durable snapshot. Snapshot write failures are
// logged, not propagated: the cache is advisory and the server remains
// the source of truth.
func (s *Session) persist(ctx context.Context, id models.Identity) {
	if err := s.repo.Save(ctx, id); err != nil {
		s.log.Warn(ctx, "failed to persist identity snapshot", "error", err)
	}
}

// Bootstrap resolves the initial session state. The cached snapshot, if
// any, fills the identity optimistically so a UI can render without
// waiting, then the server is asked unconditionally. Server confirmation
// overwrites the cache; any confirmation error clears it. Loading flips
// to false only once the sequence finishes, whatever the outcome.
func (s *Session) Bootstrap(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	cached, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read cached identity", "error", err)
	}
	if cached != nil {
		s.setIdentity(cached)
		if complete, err := s.repo.ProfileComplete(ctx); err == nil {
			s.mu.Lock()
			s.profileComplete = complete
			s.mu.Unlock()
		}
	}

	confirmed, err := s.client.CurrentIdentity(ctx)
	if err != nil {
		// the server no longer recognizes the session; the stale cache
		// must not outlive this check
		s.log.Debug(ctx, "no server-side session", "error", err)
		s.clearLocal(ctx)
		return nil
	}

	s.setIdentity(confirmed)
	s.persist(ctx, *confirmed)
	s.log.Info(ctx, "session restored", "email", confirmed.Email)
	return nil
}

// Login commits a verified identity in two phases: an optimistic local
// commit followed by a server confirmation of the freshly issued
// session. Confirmation failure rolls everything back and returns the
// error, so the caller can show it instead of navigating away.
func (s *Session) Login(ctx context.Context, res models.VerifyResult) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	// phase 1: provisional
	s.setIdentity(&res.Identity)
	s.persist(ctx, res.Identity)
	if err := s.repo.SetProfileComplete(ctx, !res.NewUser); err != nil {
		s.log.Warn(ctx, "failed to persist profile marker", "error", err)
	}

	// phase 2: authoritative
	confirmed, err := s.client.CurrentIdentity(ctx)
	if err != nil {
		s.clearLocal(ctx)
		return fmt.Errorf("session verification failed: %w", err)
	}

	s.setIdentity(confirmed)
	s.persist(ctx, *confirmed)
	s.mu.Lock()
	s.profileComplete = !res.NewUser
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "email", confirmed.Email, "new_user", res.NewUser)
	return nil
}

// Logout ends the server-side session best-effort and always clears
// local state. From the caller's perspective it cannot fail.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.client.EndSession(ctx); err != nil {
		s.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
	}
	s.clearLocal(ctx)
	return nil
}

// UpdateIdentity shallow-merges a patch into the current identity and
// refreshes the snapshot. Calling it while unauthenticated is an
// explicit error, never a merge into an absent base.
func (s *Session) UpdateIdentity(ctx context.Context, patch models.IdentityPatch) (models.Identity, error) {
	if err := s.begin(); err != nil {
		return models.Identity{}, err
	}
	defer s.end()

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return models.Identity{}, ErrNotAuthenticated
	}
	merged := s.identity.Merge(patch)
	s.identity = &merged
	s.mu.Unlock()

	s.persist(ctx, merged)
	return merged, nil
}

// MarkProfileComplete records that first-time setup has finished, both
// in memory and in the durable marker.
func (s *Session) MarkProfileComplete(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return ErrNotAuthenticated
	}
	s.profileComplete = true
	s.mu.Unlock()

	if err := s.repo.SetProfileComplete(ctx, true); err != nil {
		s.log.Warn(ctx, "failed to persist profile marker", "error", err)
	}
	return nil
}

// Watch periodically re-verifies the ambient session while one is held.
// A server-side rejection clears the session, the same rule Bootstrap
// applies; mere unavailability is left alone as transient. Watch blocks
// until ctx is done.
func (s *Session) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// check re-verifies the ambient session once. It competes for the same
// in-flight guard as the user-driven operations and skips the tick when
// one of them is running, so a background check never interleaves with a
// login or logout. The identity is sampled before the round trip and
// compared again before clearing: a rejection that belongs to an older
// session must not wipe a newer one.
func (s *Session) check(ctx context.Context) {
	sampled, ok := s.Identity()
	if !ok {
		return
	}
	if err := s.begin(); err != nil {
		return
	}
	defer s.end()

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	_, err := s.client.CurrentIdentity(checkCtx)
	cancel()

	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return
	}

	s.mu.Lock()
	current := s.identity != nil && *s.identity == sampled
	s.mu.Unlock()
	if current {
		s.log.Warn(ctx, "server session expired, logging out locally")
		s.clearLocal(ctx)
	}
}
