package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"sync"
	"time"

	deliverycontext "tattooer/internal/delivery/context"
	"tattooer/internal/domain/entity"
	"tattooer/internal/domain/repository"
	"tattooer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	savedAccountsKey  = "saved_accounts"
	currentAccountKey = "current_account_id"

	// maxSavedAccounts caps the credential cache. The cap is part of the
	// product behavior (the account switcher shows five slots), not a
	// tunable.
	maxSavedAccounts = 5
)

// accountService implements the AccountUsecase interface on top of a
// key-value store (in practice the secure/plain fallback composition).
//
// Storage failures are swallowed by design: the cache only powers the
// quick-switch convenience, so its unavailability must never surface as an
// error to a sign-in flow. Writes are serialized with a mutex so concurrent
// callers (foreground login racing a background refresh) cannot lose updates.
type accountService struct {
	store  repository.KeyValueStore
	logger *slog.Logger

	mu  sync.Mutex
	now func() time.Time
}

// AccountServiceParams holds dependencies for the account service, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store  repository.KeyValueStore
	Logger *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		store:  params.Store,
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveAccount upserts the account at the most-recently-used position and
// trims the cache to its cap, evicting the oldest tail entry.
func (srv *accountService) SaveAccount(ctx context.Context, input *usecase.SaveAccountInput) {
	if input == nil {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return
	}
	id := entity.AccountID(email)

	accounts := srv.loadAccounts(ctx)

	// Remove any existing version so the incoming one takes the head slot.
	kept := accounts[:0]
	for _, account := range accounts {
		if account.ID != id {
			kept = append(kept, account)
		}
	}

	account := entity.SavedAccount{
		ID:          id,
		Email:       email,
		Password:    input.Password,
		AccountType: input.AccountType,
		FullName:    input.FullName,
		Photo:       input.Photo,
	}
	account.Touch(srv.now())

	accounts = append([]entity.SavedAccount{account}, kept...)
	if len(accounts) > maxSavedAccounts {
		accounts = accounts[:maxSavedAccounts]
	}

	srv.persistAccounts(ctx, accounts)
	srv.setCurrentAccount(ctx, id)
}

// GetAllAccounts returns every cached account, head (most recently saved)
// first. Storage failures degrade to an empty list.
func (srv *accountService) GetAllAccounts(ctx context.Context) []entity.SavedAccount {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.loadAccounts(ctx)
}

// GetAccount looks up one account by the id derived from the email.
func (srv *accountService) GetAccount(ctx context.Context, email string) *entity.SavedAccount {
	id := entity.AccountID(email)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	for _, account := range srv.loadAccounts(ctx) {
		if account.ID == id {
			found := account

			return &found
		}
	}

	return nil
}

// HasAccount reports whether the email has a cached entry.
func (srv *accountService) HasAccount(ctx context.Context, email string) bool {
	return srv.GetAccount(ctx, email) != nil
}

// UpdateAccountLastUsed touches the recency timestamp of an existing entry,
// re-sorts the cache most-recent-first and moves the current-account pointer.
// A missing entry is a no-op, not an error.
func (srv *accountService) UpdateAccountLastUsed(ctx context.Context, email string) {
	id := entity.AccountID(email)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	accounts := srv.loadAccounts(ctx)
	found := false
	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].Touch(srv.now())
			found = true

			break
		}
	}
	if !found {
		return
	}

	sortAccountsByRecency(accounts)
	srv.persistAccounts(ctx, accounts)
	srv.setCurrentAccount(ctx, id)
}

// RemoveAccount deletes the entry for the email; absent entries are a no-op.
func (srv *accountService) RemoveAccount(ctx context.Context, email string) {
	id := entity.AccountID(email)

	srv.mu.Lock()
	defer srv.mu.Unlock()

	accounts := srv.loadAccounts(ctx)
	kept := accounts[:0]
	removed := false
	for _, account := range accounts {
		if account.ID == id {
			removed = true

			continue
		}
		kept = append(kept, account)
	}
	if !removed {
		return
	}

	srv.persistAccounts(ctx, kept)
}

// ClearAllAccounts empties the cache and the current-account pointer in
// every backend.
func (srv *accountService) ClearAllAccounts(ctx context.Context) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if err := srv.store.Delete(ctx, savedAccountsKey); err != nil {
		srv.log(ctx).Warn("Failed to clear saved accounts", slog.Any("error", err))
	}
	if err := srv.store.Delete(ctx, currentAccountKey); err != nil {
		srv.log(ctx).Warn("Failed to clear current account pointer", slog.Any("error", err))
	}
}

// CurrentAccountID returns the persisted current-account pointer, or "".
func (srv *accountService) CurrentAccountID(ctx context.Context) string {
	id, err := srv.store.Get(ctx, currentAccountKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Warn("Failed to read current account pointer", slog.Any("error", err))
		}

		return ""
	}

	return id
}

// loadAccounts reads and decodes the cached account list. Any storage or
// decode failure degrades to an empty list.
func (srv *accountService) loadAccounts(ctx context.Context) []entity.SavedAccount {
	raw, err := srv.store.Get(ctx, savedAccountsKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			srv.log(ctx).Warn("Failed to read saved accounts", slog.Any("error", err))
		}

		return []entity.SavedAccount{}
	}

	var accounts []entity.SavedAccount
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		srv.log(ctx).Warn("Saved accounts payload is corrupt, treating as empty", slog.Any("error", err))

		return []entity.SavedAccount{}
	}

	return accounts
}

// persistAccounts encodes and writes the account list, best effort.
func (srv *accountService) persistAccounts(ctx context.Context, accounts []entity.SavedAccount) {
	payload, err := json.Marshal(accounts)
	if err != nil {
		srv.log(ctx).Warn("Failed to encode saved accounts", slog.Any("error", err))

		return
	}

	if err := srv.store.Set(ctx, savedAccountsKey, string(payload)); err != nil {
		srv.log(ctx).Warn("Failed to persist saved accounts", slog.Any("error", err))
	}
}

func (srv *accountService) setCurrentAccount(ctx context.Context, id string) {
	if err := srv.store.Set(ctx, currentAccountKey, id); err != nil {
		srv.log(ctx).Warn("Failed to persist current account pointer", slog.Any("error", err))
	}
}

// sortAccountsByRecency orders most recently used first. The sort is stable
// so entries touched within the same millisecond keep their relative order.
func sortAccountsByRecency(accounts []entity.SavedAccount) {
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].LastUsed > accounts[j].LastUsed
	})
}
