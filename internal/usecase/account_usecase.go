package usecase

import (
	"context"

	"tattooer/internal/domain/entity"
)

// SaveAccountInput is the payload for upserting a credential-cache entry.
type SaveAccountInput struct {
	Email       string
	Password    string
	AccountType entity.AccountType
	FullName    string
	Photo       string
}

// AccountUsecase is the local multi-account credential cache backing fast
// account switching. Operations never propagate storage failures: on any
// backend error they log and degrade to an empty/no-op result, so cache
// unavailability can disable quick switching but never block sign-in.
type AccountUsecase interface {
	// SaveAccount upserts by the id derived from the email, moves the entry
	// to the most-recently-used position and trims the cache to its cap.
	SaveAccount(ctx context.Context, input *SaveAccountInput)

	// GetAllAccounts returns every cached account, most recently saved first.
	GetAllAccounts(ctx context.Context) []entity.SavedAccount

	// GetAccount returns the cached account for the email, or nil.
	GetAccount(ctx context.Context, email string) *entity.SavedAccount

	// HasAccount reports whether an account is cached for the email.
	HasAccount(ctx context.Context, email string) bool

	// UpdateAccountLastUsed touches the recency timestamp of an existing
	// entry and re-sorts the cache. Missing entries are a no-op.
	UpdateAccountLastUsed(ctx context.Context, email string)

	// RemoveAccount deletes the entry for the email. Missing entries are a no-op.
	RemoveAccount(ctx context.Context, email string)

	// ClearAllAccounts empties the cache and the current-account pointer.
	ClearAllAccounts(ctx context.Context)

	// CurrentAccountID returns the persisted current-account pointer, or "".
	CurrentAccountID(ctx context.Context) string
}
