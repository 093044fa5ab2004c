package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookdesk/internal/client/models"
	"github.com/dmitrijs2005/bookdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookdesk/internal/dbx"
	"github.com/dmitrijs2005/bookdesk/internal/logging"
	jsoniter "github.com/json-iterator/go"
)

// Durable storage keys.
const (
	KeyCredential = "token"
	KeyProfile    = "userInfo"
)

var (
	ErrIncompleteSession = errors.New("session requires both credential and profile")
	ErrNotLoggedIn       = errors.New("not logged in")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Backend is the database the store persists into; *sql.DB satisfies it.
type Backend interface {
	dbx.DBTX
	dbx.TxBeginner
}

// Snapshot is an immutable copy of the session at one point in time.
//
// Generation changes every time the credential is replaced or dropped, so a
// caller holding an old snapshot can tell that the session moved on.
type Snapshot struct {
	Credential string
	Profile    *models.Profile
	Generation uint64
}

func (s Snapshot) IsLoggedIn() bool { return s.Credential != "" }

func (s Snapshot) IsAdmin() bool { return s.Profile.IsAdmin() }

// Store is the single owner of the session. All mutations are serialised by
// mu and hit durable storage before memory changes.
type Store struct {
	db  Backend
	log logging.Logger

	mu         sync.RWMutex
	credential string
	profile    *models.Profile
	generation uint64
}

// NewStore returns a logged-out store over db. Call Load to restore a
// persisted session.
func NewStore(db Backend, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Load reads the persisted session. It never fails: a missing, partial or
// unreadable pair leaves the store logged out.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential, s.profile = "", nil
	s.generation++

	credential, profile, err := s.read(ctx)
	if err != nil {
		s.log.Warn(ctx, "persisted session discarded", "err", err)
		if derr := s.repo(s.db).Delete(ctx, KeyCredential, KeyProfile); derr != nil {
			s.log.Warn(ctx, "failed to remove persisted session", "err", derr)
		}
		return
	}

	s.credential, s.profile = credential, profile
	if credential != "" {
		s.log.Debug(ctx, "session restored", "username", profile.Username)
	}
}

func (s *Store) read(ctx context.Context) (string, *models.Profile, error) {
	values, err := s.repo(s.db).GetMany(ctx, KeyCredential, KeyProfile)
	if err != nil {
		return "", nil, err
	}
	rawCredential, rawProfile := values[KeyCredential], values[KeyProfile]

	hasCredential, hasProfile := len(rawCredential) > 0, len(rawProfile) > 0
	switch {
	case !hasCredential && !hasProfile:
		return "", nil, nil
	case hasCredential != hasProfile:
		return "", nil, ErrIncompleteSession
	}

	var profile *models.Profile
	if err := json.Unmarshal(rawProfile, &profile); err != nil {
		return "", nil, fmt.Errorf("decode profile: %w", err)
	}
	if profile == nil {
		return "", nil, ErrIncompleteSession
	}
	return string(rawCredential), profile, nil
}

// Set replaces the session with credential and profile.
func (s *Store) Set(ctx context.Context, credential string, profile *models.Profile) error {
	if credential == "" || profile == nil {
		return ErrIncompleteSession
	}
	p := *profile
	raw, err := json.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, KeyCredential, []byte(credential)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyProfile, raw)
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.credential, s.profile = credential, &p
	s.generation++
	return nil
}

// Clear drops the session. Clearing an empty session is a no-op that still
// succeeds. Memory is cleared even when the durable delete fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx)
}

// ClearIfCurrent drops the session only if it is still the one identified by
// generation. It reports whether the session was cleared; a failed durable
// delete still clears memory and is returned with cleared set.
func (s *Store) ClearIfCurrent(ctx context.Context, generation uint64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return false, nil
	}
	return true, s.clearLocked(ctx)
}

// clearLocked logs the session out in memory unconditionally. The durable
// delete may fail; a credential left on disk is rejected by the server on
// the next start.
func (s *Store) clearLocked(ctx context.Context) error {
	s.credential, s.profile = "", nil
	s.generation++

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repo(tx).Delete(ctx, KeyCredential, KeyProfile)
	})
	if err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// UpdateProfile replaces the stored profile and keeps the credential.
func (s *Store) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return ErrIncompleteSession
	}
	p := *profile
	raw, err := json.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credential == "" {
		return ErrNotLoggedIn
	}
	if err := s.repo(s.db).Set(ctx, KeyProfile, raw); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	s.profile = &p
	return nil
}

// Snapshot returns a copy of the current session. The profile is copied, so
// callers may keep it across later changes.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Credential: s.credential, Generation: s.generation}
	if s.profile != nil {
		p := *s.profile
		snap.Profile = &p
	}
	return snap
}

func (s *Store) IsLoggedIn() bool {
	return s.Snapshot().IsLoggedIn()
}

func (s *Store) IsAdmin() bool {
	return s.Snapshot().IsAdmin()
}

var _ Backend = (*sql.DB)(nil)
