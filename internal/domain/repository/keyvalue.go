package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the minimal persistence primitive the credential cache is
// built on: string keys to string values. Two implementations exist, an
// encrypted-at-rest primary and a plain secondary, composed by a fallback
// store that repairs the primary from the secondary.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
