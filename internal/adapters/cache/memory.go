package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerline/expense-service/internal/ports"
)

// MemoryTokenRevocationStore is the single-instance revocation registry: a
// mutex-guarded set keyed by the exact token value. Entries are only added,
// never expired, so the set grows until process restart. Multi-instance
// deployments need the Redis-backed store instead; each process would
// otherwise hold an independent registry.
type MemoryTokenRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func NewMemoryTokenRevocationStore() *MemoryTokenRevocationStore {
	return &MemoryTokenRevocationStore{revoked: make(map[string]struct{})}
}

func (s *MemoryTokenRevocationStore) Revoke(_ context.Context, token string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = struct{}{}
	return nil
}

func (s *MemoryTokenRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok, nil
}

func (s *MemoryTokenRevocationStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.revoked, token)
	return nil
}

type lockoutEntry struct {
	failedCount int
	lockedUntil *time.Time
	updatedAt   time.Time
}

// MemoryLockoutStore is the process-local LockoutStore counterpart, used
// when no Redis URL is configured.
type MemoryLockoutStore struct {
	mu      sync.Mutex
	entries map[string]*lockoutEntry
}

func NewMemoryLockoutStore() *MemoryLockoutStore {
	return &MemoryLockoutStore{entries: make(map[string]*lockoutEntry)}
}

func (s *MemoryLockoutStore) Get(_ context.Context, key string) (ports.LockoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		return ports.LockoutState{}, nil
	}
	return ports.LockoutState{FailedCount: entry.failedCount, LockedUntil: entry.lockedUntil}, nil
}

func (s *MemoryLockoutStore) RecordFailure(_ context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (ports.LockoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok {
		entry = &lockoutEntry{}
		s.entries[key] = entry
	}
	entry.failedCount++
	entry.updatedAt = now
	if entry.failedCount >= threshold {
		lockedUntil := now.Add(lockoutWindow).UTC()
		entry.lockedUntil = &lockedUntil
	}
	return ports.LockoutState{FailedCount: entry.failedCount, LockedUntil: entry.lockedUntil}, nil
}

func (s *MemoryLockoutStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
