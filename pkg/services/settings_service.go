package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waflow/waflow/ent"
	"github.com/waflow/waflow/ent/setting"
)

// SettingsService is the process-wide key/value store with JSON values.
// Keys are namespaced strings; absence of a key means "use the default".
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Get returns the raw JSON value at key, or ErrNotFound.
func (s *SettingsService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	row, err := s.client.Setting.Query().
		Where(setting.IDEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying setting %q: %w", key, err)
	}
	return row.Value, nil
}

// Load unmarshals the value at key into v. found is false when the key
// is absent, leaving v untouched.
func (s *SettingsService) Load(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

// Save upserts a JSON value at key.
func (s *SettingsService) Save(ctx context.Context, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	return s.SaveRaw(ctx, key, raw)
}

// SaveRaw upserts a pre-encoded JSON value at key.
func (s *SettingsService) SaveRaw(ctx context.Context, key string, raw json.RawMessage) error {
	err := s.client.Setting.Create().
		SetID(key).
		SetValue(raw).
		OnConflictColumns(setting.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("saving setting %q: %w", key, err)
	}
	return nil
}

// GetString reads a string-valued setting, returning def when absent or
// not a JSON string.
func (s *SettingsService) GetString(ctx context.Context, key, def string) string {
	var v string
	found, err := s.Load(ctx, key, &v)
	if err != nil || !found {
		return def
	}
	return v
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *SettingsService) Delete(ctx context.Context, key string) error {
	_, err := s.client.Setting.Delete().
		Where(setting.IDEQ(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}
