// Package session tracks which account is logged in. The value is cached in
// memory and mirrored to the store under a single key so it survives a
// restart.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

type Manager struct {
	mu      sync.Mutex
	store   *storage.Store
	current *models.Account
	loaded  bool
}

func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store}
}

// SetCurrentUser establishes the session, or clears it when account is nil.
func (m *Manager) SetCurrentUser(account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if account == nil {
		m.current = nil
		m.loaded = true
		return m.store.Delete(storage.KeyCurrentUser)
	}

	raw, err := json.Marshal(account)
	if err != nil {
		return err
	}
	if err := m.store.Set(storage.KeyCurrentUser, raw); err != nil {
		return err
	}
	copied := *account
	m.current = &copied
	m.loaded = true
	return nil
}

// GetCurrentUser returns the cached session, hydrating from the persisted
// mirror on first read. An absent or malformed mirror yields nil; only a
// storage failure is an error.
func (m *Manager) GetCurrentUser() (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		raw, err := m.store.Get(storage.KeyCurrentUser)
		switch {
		case errors.Is(err, storage.ErrKeyNotFound):
			m.current = nil
		case err != nil:
			return nil, err
		default:
			var account models.Account
			if err := json.Unmarshal(raw, &account); err != nil {
				// Malformed mirror reads as "not logged in".
				m.current = nil
			} else {
				m.current = &account
			}
		}
		m.loaded = true
	}

	if m.current == nil {
		return nil, nil
	}
	copied := *m.current
	return &copied, nil
}

// Logout clears the session.
func (m *Manager) Logout() error {
	return m.SetCurrentUser(nil)
}
