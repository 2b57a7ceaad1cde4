package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// AccountType distinguishes the two roles an account can sign in as.
type AccountType string

const (
	AccountTypeArtist AccountType = "artist"
	AccountTypeClient AccountType = "client"
)

// accountNamespace is the fixed namespace for deriving account ids from
// email addresses via UUIDv5. Changing it invalidates every stored id.
var accountNamespace = uuid.MustParse("8f1c2a44-6d15-4f92-9b37-2e0b6a5f7d01")

// SavedAccount is one entry in the local multi-account credential cache
// that backs fast account switching.
//
// The password is stored as it was provided so it can be replayed at
// switch time. The secure backend encrypts records at rest, but the value
// itself is not hashed.
type SavedAccount struct {
	ID          string      `json:"id"`
	Email       string      `json:"email"`
	Password    string      `json:"password"`
	AccountType AccountType `json:"accountType"`
	FullName    string      `json:"fullName,omitempty"`
	Photo       string      `json:"photo,omitempty"`
	LastUsed    int64       `json:"lastUsed"` // Milliseconds since epoch, recency ordering key.
}

// NormalizeEmail produces the canonical form of an email used as the
// natural key of a saved account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AccountID derives the deterministic id of a saved account from its email.
// The same email always maps to the same id, so upserts are keyed naturally.
func AccountID(email string) string {
	return uuid.NewSHA1(accountNamespace, []byte(NormalizeEmail(email))).String()
}

// Touch updates the recency timestamp.
func (a *SavedAccount) Touch(now time.Time) {
	a.LastUsed = now.UnixMilli()
}
