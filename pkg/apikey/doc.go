// Package apikey parses Vortex API keys and derives the per-key signing
// material used for widget tokens.
//
// A key has the form
//
//	VRTX.<base64url(16-byte UUID)>.<secret>
//
// The middle segment identifies the key and is not secret: it is decoded into
// canonical UUID text and travels in the token header as "kid" so that the
// verifying side can look the key up. The last segment seeds the signing key,
// which is HMAC-SHA256(key=secret, message=id) and is recomputed every time
// it is requested.
//
// # Usage
//
//	import "github.com/dmitrymomot/vortex/pkg/apikey"
//
//	key, err := apikey.Parse(os.Getenv("VORTEX_API_KEY"))
//	if err != nil {
//	    // errors.Is(err, apikey.ErrInvalidFormat) or apikey.ErrInvalidPrefix
//	}
//	kid := key.ID()
//
// Key implements fmt.Stringer and slog.LogValuer with the secret redacted, so
// passing it to a logger or fmt verb never leaks the secret.
package apikey
