// Package jwt signs and verifies the compact HS256 tokens consumed by the
// Vortex widget.
//
// Tokens are plain JWS compact serializations built with the standard library:
//
//	base64url(header) "." base64url(claims) "." base64url(HMAC-SHA256(signingKey, signingInput))
//
// The header is always {"iat":<now>,"alg":"HS256","typ":"JWT","kid":<key id>}.
// The signing key is not the API key secret itself but a key derived from it
// (see apikey.Key.SigningKey); it is recomputed for every token and never
// leaves the Service.
//
// # Usage
//
//	import "github.com/dmitrymomot/vortex/pkg/jwt"
//
//	svc, err := jwt.NewFromString(os.Getenv("VORTEX_API_KEY"))
//	if err != nil {
//	    // apikey.ErrInvalidFormat / apikey.ErrInvalidPrefix
//	}
//
//	token, err := svc.Generate(map[string]any{"userId": "42"})
//
//	var claims map[string]any
//	if err := svc.Parse(token, &claims); err != nil {
//	    // jwt.ErrInvalidSignature, jwt.ErrExpiredToken, ...
//	}
//
// # Determinism
//
// Given the same key, claims and clock second, Generate returns byte-identical
// tokens. Use WithClock to freeze time in tests.
//
// # Error Handling
//
// Errors are sentinel values comparable with errors.Is.
package jwt
