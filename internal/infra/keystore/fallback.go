package keystore

import (
	"context"
	"log/slog"

	"tattooer/internal/domain/repository"

	"github.com/pkg/errors"
)

// FallbackStore composes a primary (encrypted) and a secondary (plain)
// backend. Reads prefer the primary and fall back to the secondary; when the
// secondary holds a value the primary lost, the primary is repopulated from
// it before the value is returned. Writes and deletes go to both backends
// best effort: a partial write is possible and accepted, bounded by the next
// successful write.
type FallbackStore struct {
	primary   repository.KeyValueStore
	secondary repository.KeyValueStore
	logger    *slog.Logger
}

// NewFallbackStore composes the two backends.
func NewFallbackStore(primary, secondary repository.KeyValueStore, logger *slog.Logger) *FallbackStore {
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Get reads from the primary, falling back to the secondary and repopulating
// the primary on a secondary hit.
func (s *FallbackStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, repository.ErrKeyNotFound) {
		s.logger.Warn("Primary store read failed, trying secondary",
			slog.String("key", key), slog.Any("error", err))
	}

	value, err = s.secondary.Get(ctx, key)
	if err != nil {
		return "", err
	}

	// Self-healing warm-up: the secondary had data the primary lacks.
	if err := s.primary.Set(ctx, key, value); err != nil {
		s.logger.Warn("Failed to repopulate primary store from secondary",
			slog.String("key", key), slog.Any("error", err))
	}

	return value, nil
}

// Set writes to both backends. It fails only when neither backend accepted
// the write.
func (s *FallbackStore) Set(ctx context.Context, key, value string) error {
	primaryErr := s.primary.Set(ctx, key, value)
	if primaryErr != nil {
		s.logger.Warn("Primary store write failed",
			slog.String("key", key), slog.Any("error", primaryErr))
	}

	secondaryErr := s.secondary.Set(ctx, key, value)
	if secondaryErr != nil {
		s.logger.Warn("Secondary store write failed",
			slog.String("key", key), slog.Any("error", secondaryErr))
	}

	if primaryErr != nil && secondaryErr != nil {
		return errors.Wrap(primaryErr, "both store backends rejected the write")
	}

	return nil
}

// Delete removes the key from both backends. It fails only when both
// deletions failed.
func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if primaryErr != nil {
		s.logger.Warn("Primary store delete failed",
			slog.String("key", key), slog.Any("error", primaryErr))
	}

	secondaryErr := s.secondary.Delete(ctx, key)
	if secondaryErr != nil {
		s.logger.Warn("Secondary store delete failed",
			slog.String("key", key), slog.Any("error", secondaryErr))
	}

	if primaryErr != nil && secondaryErr != nil {
		return errors.Wrap(primaryErr, "both store backends rejected the delete")
	}

	return nil
}
