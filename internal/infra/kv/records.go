package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// LoadRecords decodes the JSON array stored under key. A missing or empty
// slot yields an empty list. A slot that cannot be decoded propagates the
// error to the caller; corrupted state is never silently discarded.
func LoadRecords[T any](ctx context.Context, s Store, key string) ([]T, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return records, nil
}

// SaveRecords encodes the full record list and overwrites the slot.
func SaveRecords[T any](ctx context.Context, s Store, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
