package database

import (
	"context"
	"errors"
)

// ErrEmptyKey is returned when a store operation is given an empty key
var ErrEmptyKey = errors.New("store key cannot be empty")

// Store is a string key-value store. The board is persisted as one JSON
// document under one key. Implementations make each Set atomic with respect
// to Get.
type Store interface {
	// Get returns the value for key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
	Close() error
}
