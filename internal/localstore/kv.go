package localstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// Persisted keys mirroring the browser client's localStorage.
const (
	KeySession           = "session"
	KeyTitle             = "title"
	KeyCategories        = "categories"
	KeyOffers            = "offers"
	KeyAddressTypes      = "addressTypes"
	KeyAnimationsEnabled = "animationsEnabled"
	KeyInvoiceCount      = "invoiceCount"
)

// Get returns the value for key. The second return is false when the
// key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts a key/value pair.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// GetJSON decodes the stored value for key into out. Returns false
// when the key is absent.
func (s *Store) GetJSON(key string, out any) (bool, error) {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores v as JSON under key.
func (s *Store) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}
