package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrymomot/vortex/pkg/apikey"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header is the token header. Field order is the wire order.
// KeyID carries the API key identifier so the verifier can find the secret.
type Header struct {
	IssuedAt  int64  `json:"iat"`
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
	KeyID     string `json:"kid"`
}

// Claims are the expiry claims every widget token carries.
// Embed it in richer claim structs to get expiry validation in Parse.
type Claims struct {
	Expires int64 `json:"expires,omitempty"`
}

// Valid rejects tokens whose "expires" is in the past relative to now.
// A zero value is treated as unset.
func (c Claims) Valid(now time.Time) error {
	if c.Expires > 0 && now.Unix() > c.Expires {
		return ErrExpiredToken
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, mostly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service signs and verifies tokens for a single API key.
// It holds the parsed key only; the signing key is derived per call.
type Service struct {
	key apikey.Key
	now func() time.Time
}

// New creates a signer for an already parsed key.
func New(key apikey.Key, opts ...Option) (*Service, error) {
	if key.IsZero() {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		key: key,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewFromString parses the raw API key and creates a signer.
// Malformed keys are rejected before any cryptographic work.
func NewFromString(rawKey string, opts ...Option) (*Service, error) {
	key, err := apikey.Parse(rawKey)
	if err != nil {
		return nil, err
	}
	return New(key, opts...)
}

// KeyID returns the identifier placed in the "kid" header.
func (s *Service) KeyID() string {
	return s.key.ID()
}

// Generate signs claims and returns the compact token.
// Claims may be any JSON-serializable value; the header is built here and
// cannot be influenced by claims.
func (s *Service) Generate(claims any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	header := Header{
		IssuedAt:  s.now().Unix(),
		Algorithm: HeaderAlgorithm,
		Type:      HeaderType,
		KeyID:     s.key.ID(),
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies a token issued for this key and unmarshals its claims.
// Claims implementing Valid(time.Time) error are validated against the
// service clock.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(s.sign(payload))) != 1 {
		return ErrInvalidSignature
	}

	header, err := DecodeHeader(token)
	if err != nil {
		return err
	}
	if header.Algorithm != HeaderAlgorithm {
		return ErrUnexpectedSigningMethod
	}
	if header.KeyID != s.key.ID() {
		return ErrUnknownKeyID
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return fmt.Errorf("%w: failed to decode claims: %w", ErrInvalidToken, err)
	}
	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("%w: failed to unmarshal claims: %w", ErrInvalidClaims, err)
	}

	if v, ok := claims.(interface{ Valid(time.Time) error }); ok {
		if err := v.Valid(s.now()); err != nil {
			return err
		}
	}

	return nil
}

// DecodeHeader returns the unverified header of a token.
// Useful to pick the right key by "kid" before calling Parse.
func DecodeHeader(token string) (Header, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Header{}, ErrInvalidToken
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return Header{}, fmt.Errorf("%w: failed to decode header: %w", ErrInvalidToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return Header{}, fmt.Errorf("%w: failed to unmarshal header: %w", ErrInvalidToken, err)
	}
	return header, nil
}

// sign returns the base64url HMAC-SHA256 of payload under the derived key.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.key.SigningKey())
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes unpadded base64url, tolerating stray padding.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
