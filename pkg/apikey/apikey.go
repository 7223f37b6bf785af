package apikey

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Prefix is the literal first segment of every Vortex API key.
const Prefix = "VRTX"

const redacted = "***"

// Key is a parsed API key. The zero value is not usable; use Parse.
type Key struct {
	raw       string
	encodedID string
	id        string
	secret    string
}

// Parse validates the key structure and decodes its identifier.
// No cryptographic work happens here.
func Parse(raw string) (Key, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Key{}, ErrInvalidFormat
	}

	if parts[0] != Prefix {
		return Key{}, ErrInvalidPrefix
	}

	idBytes, err := base64URLDecode(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("%w: identifier is not base64url: %w", ErrInvalidFormat, err)
	}

	// FromBytes is a plain byte-layout transform: no version or variant checks.
	id, err := uuid.FromBytes(idBytes)
	if err != nil {
		return Key{}, fmt.Errorf("%w: identifier must be 16 bytes, got %d", ErrInvalidFormat, len(idBytes))
	}

	return Key{
		raw:       raw,
		encodedID: parts[1],
		id:        id.String(),
		secret:    parts[2],
	}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level initialization with constant keys.
func MustParse(raw string) Key {
	k, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return k
}

// ID returns the key identifier as canonical UUID text.
func (k Key) ID() string {
	return k.id
}

// Raw returns the full key as supplied, secret included.
// It is what the remote API expects in the credential header.
func (k Key) Raw() string {
	return k.raw
}

// IsZero reports whether k was produced by Parse.
func (k Key) IsZero() bool {
	return k.raw == ""
}

// SigningKey derives the HMAC-SHA256 key used to sign widget tokens.
// The result is computed on each call and must not be stored or logged.
func (k Key) SigningKey() []byte {
	h := hmac.New(sha256.New, []byte(k.secret))
	h.Write([]byte(k.id))
	return h.Sum(nil)
}

// String renders the key with its secret redacted.
func (k Key) String() string {
	if k.IsZero() {
		return ""
	}
	return Prefix + "." + k.encodedID + "." + redacted
}

// GoString keeps %#v from printing struct fields.
func (k Key) GoString() string {
	return "apikey.Key(" + k.String() + ")"
}

// LogValue implements slog.LogValuer.
func (k Key) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kid", k.id),
		slog.String("key", k.String()),
	)
}

// base64URLDecode accepts both padded and unpadded base64url input.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
