package keystore

import (
	"context"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"tattooer/internal/domain/repository"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// argon2id parameters for deriving the sealing key from the device secret.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	saltSize     = 16
)

// SecureStore is the encrypted-at-rest key-value backend. Each value is
// sealed individually with XChaCha20-Poly1305 under a key derived from the
// configured secret via argon2id; the random salt lives in the store file
// next to the sealed values.
type SecureStore struct {
	path   string
	secret []byte
	mu     sync.Mutex
}

// secureFile is the on-disk layout of the store.
type secureFile struct {
	Salt   string            `json:"salt"`
	Values map[string]string `json:"values"`
}

// NewSecureStore creates a secure store rooted at path, sealing values with
// a key derived from secret.
func NewSecureStore(path, secret string) (*SecureStore, error) {
	if secret == "" {
		return nil, errors.New("secure store secret must not be empty")
	}

	return &SecureStore{
		path:   path,
		secret: []byte(secret),
	}, nil
}

// Get returns and unseals the value for key, or repository.ErrKeyNotFound.
func (s *SecureStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return "", err
	}

	sealed, ok := file.Values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return s.unseal(file.Salt, sealed)
}

// Set seals and stores the value under key.
func (s *SecureStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	sealed, err := s.seal(file.Salt, value)
	if err != nil {
		return err
	}
	file.Values[key] = sealed

	return s.write(file)
}

// Delete removes key. Deleting a missing key is not an error.
func (s *SecureStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.read()
	if err != nil {
		return err
	}

	if _, ok := file.Values[key]; !ok {
		return nil
	}
	delete(file.Values, key)

	return s.write(file)
}

// read loads the store file, initializing a fresh salt when the file does
// not exist yet.
func (s *SecureStore) read() (*secureFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			salt := make([]byte, saltSize)
			if _, err := rand.Read(salt); err != nil {
				return nil, errors.Wrap(err, "failed to generate salt")
			}

			return &secureFile{
				Salt:   base64.StdEncoding.EncodeToString(salt),
				Values: map[string]string{},
			}, nil
		}

		return nil, errors.Wrap(err, "failed to read secure store file")
	}

	file := &secureFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, errors.Wrap(err, "secure store file is corrupt")
	}
	if file.Values == nil {
		file.Values = map[string]string{}
	}

	return file, nil
}

func (s *SecureStore) write(file *secureFile) error {
	data, err := json.Marshal(file)
	if err != nil {
		return errors.Wrap(err, "failed to encode secure store")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create store directory")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, storeFilePermissions); err != nil {
		return errors.Wrap(err, "failed to write secure store temp file")
	}

	return errors.Wrap(os.Rename(tmp, s.path), "failed to replace secure store file")
}

// seal encrypts a value under the salt-derived key. The nonce is prepended
// to the ciphertext and the whole blob is base64 encoded.
func (s *SecureStore) seal(encodedSalt, value string) (string, error) {
	aead, err := s.cipher(encodedSalt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(value), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *SecureStore) unseal(encodedSalt, sealed string) (string, error) {
	aead, err := s.cipher(encodedSalt)
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", errors.Wrap(err, "sealed value is not valid base64")
	}
	if len(blob) < aead.NonceSize() {
		return "", errors.New("sealed value is too short")
	}

	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to unseal value")
	}

	return string(plain), nil
}

func (s *SecureStore) cipher(encodedSalt string) (cipher.AEAD, error) {
	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return nil, errors.Wrap(err, "store salt is not valid base64")
	}

	key := argon2.IDKey(s.secret, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize cipher")
	}

	return aead, nil
}
