package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tattooer/internal/domain/entity"
	"tattooer/internal/domain/repository"
	"tattooer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKVStore is an in-memory KeyValueStore with switchable failure modes.
type fakeKVStore struct {
	mu   sync.Mutex
	data map[string]string

	failReads  bool
	failWrites bool
}

func newFakeKVStore() *fakeKVStore {
	return &fakeKVStore{data: map[string]string{}}
}

func (f *fakeKVStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failReads {
		return "", errors.New("backend unavailable")
	}
	value, ok := f.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (f *fakeKVStore) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return errors.New("backend unavailable")
	}
	f.data[key] = value

	return nil
}

func (f *fakeKVStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWrites {
		return errors.New("backend unavailable")
	}
	delete(f.data, key)

	return nil
}

// newAccountServiceForTest returns the service with a controllable clock that
// advances one millisecond per reading, so recency ordering is deterministic.
func newAccountServiceForTest(t *testing.T) (usecase.AccountUsecase, *fakeKVStore) {
	t.Helper()

	store := newFakeKVStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewAccountService(AccountServiceParams{
		Store:  store,
		Logger: logger,
	}).(*accountService)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Millisecond)
	}

	return svc, store
}

func TestAccountService_SaveAccount_StoresAndPointsCurrent(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{
		Email:       "Nora@Studio.example",
		Password:    "hunter2hunter2",
		AccountType: entity.AccountTypeArtist,
		FullName:    "Nora Lindqvist",
	})

	accounts := svc.GetAllAccounts(ctx)
	require.Len(t, accounts, 1)
	assert.Equal(t, "nora@studio.example", accounts[0].Email, "emails are normalized before keying")
	assert.Equal(t, "Nora Lindqvist", accounts[0].FullName)
	assert.NotZero(t, accounts[0].LastUsed)

	assert.Equal(t, accounts[0].ID, svc.CurrentAccountID(ctx))
	assert.True(t, svc.HasAccount(ctx, "nora@studio.example"))
	assert.True(t, svc.HasAccount(ctx, "NORA@studio.example"))
}

func TestAccountService_SaveAccount_SameEmailUpsertsToHead(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "one"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "b@example.com", Password: "two"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "three"})

	accounts := svc.GetAllAccounts(ctx)
	require.Len(t, accounts, 2, "re-saving must not duplicate the entry")
	assert.Equal(t, "a@example.com", accounts[0].Email)
	assert.Equal(t, "three", accounts[0].Password, "latest save wins")
	assert.Equal(t, "b@example.com", accounts[1].Email)
}

func TestAccountService_SaveAccount_CapEvictsOldestEntry(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		svc.SaveAccount(ctx, &usecase.SaveAccountInput{
			Email:    fmt.Sprintf("artist%d@example.com", i),
			Password: "pw",
		})
	}

	accounts := svc.GetAllAccounts(ctx)
	require.Len(t, accounts, 5)
	assert.Equal(t, "artist5@example.com", accounts[0].Email)
	assert.Equal(t, "artist1@example.com", accounts[4].Email)
	assert.False(t, svc.HasAccount(ctx, "artist0@example.com"),
		"the oldest entry is evicted when the sixth account arrives")
}

func TestAccountService_UpdateAccountLastUsed_ReordersByRecency(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "b@example.com", Password: "pw"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "c@example.com", Password: "pw"})

	svc.UpdateAccountLastUsed(ctx, "a@example.com")

	accounts := svc.GetAllAccounts(ctx)
	require.Len(t, accounts, 3)
	assert.Equal(t, "a@example.com", accounts[0].Email)
	assert.Equal(t, "c@example.com", accounts[1].Email)
	assert.Equal(t, "b@example.com", accounts[2].Email)

	assert.Equal(t, entity.AccountID("a@example.com"), svc.CurrentAccountID(ctx))
}

func TestAccountService_UpdateAccountLastUsed_MissingEntryIsNoop(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	before := svc.GetAllAccounts(ctx)

	svc.UpdateAccountLastUsed(ctx, "ghost@example.com")

	assert.Equal(t, before, svc.GetAllAccounts(ctx))
	assert.Equal(t, entity.AccountID("a@example.com"), svc.CurrentAccountID(ctx),
		"the current pointer must not move for an unknown email")
}

func TestAccountService_RemoveAccount(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "b@example.com", Password: "pw"})

	svc.RemoveAccount(ctx, "a@example.com")

	accounts := svc.GetAllAccounts(ctx)
	require.Len(t, accounts, 1)
	assert.Equal(t, "b@example.com", accounts[0].Email)

	// Removing again, or removing an unknown email, changes nothing.
	svc.RemoveAccount(ctx, "a@example.com")
	svc.RemoveAccount(ctx, "ghost@example.com")
	assert.Len(t, svc.GetAllAccounts(ctx), 1)
}

func TestAccountService_ClearAllAccounts(t *testing.T) {
	svc, store := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "b@example.com", Password: "pw"})

	svc.ClearAllAccounts(ctx)

	assert.Empty(t, svc.GetAllAccounts(ctx))
	assert.Empty(t, svc.CurrentAccountID(ctx))
	assert.Empty(t, store.data, "both backend keys must be removed")
}

func TestAccountService_StorageFailuresDegradeSilently(t *testing.T) {
	svc, store := newAccountServiceForTest(t)
	ctx := context.Background()

	store.failWrites = true
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	svc.UpdateAccountLastUsed(ctx, "a@example.com")
	svc.RemoveAccount(ctx, "a@example.com")
	svc.ClearAllAccounts(ctx)

	store.failWrites = false
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})

	store.failReads = true
	assert.Empty(t, svc.GetAllAccounts(ctx), "read failures degrade to an empty list")
	assert.Nil(t, svc.GetAccount(ctx, "a@example.com"))
	assert.Empty(t, svc.CurrentAccountID(ctx))
}

func TestAccountService_CorruptPayloadTreatedAsEmpty(t *testing.T) {
	svc, store := newAccountServiceForTest(t)
	ctx := context.Background()

	store.data["saved_accounts"] = "{not json"

	assert.Empty(t, svc.GetAllAccounts(ctx))

	// The cache recovers on the next write.
	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "a@example.com", Password: "pw"})
	assert.Len(t, svc.GetAllAccounts(ctx), 1)
}

func TestAccountService_AccountIDIsDeterministic(t *testing.T) {
	svc, _ := newAccountServiceForTest(t)
	ctx := context.Background()

	svc.SaveAccount(ctx, &usecase.SaveAccountInput{Email: "Nora@Studio.example", Password: "pw"})

	account := svc.GetAccount(ctx, "nora@studio.example")
	require.NotNil(t, account)
	assert.Equal(t, entity.AccountID("nora@studio.example"), account.ID)
	assert.Equal(t, entity.AccountID(" NORA@studio.example "), account.ID,
		"the id depends only on the normalized email")
}
