package vortex

import (
	"maps"
	"slices"
	"time"

	"github.com/dmitrymomot/vortex/pkg/apikey"
	"github.com/dmitrymomot/vortex/pkg/jwt"
)

// AutojoinScope is the admin scope that lets a user manage autojoin domains
// from the widget.
const AutojoinScope = "autojoin"

// tokenTTL is fixed by the widget contract.
const tokenTTL = time.Hour

// User is the subject a widget token is issued for.
type User struct {
	ID    string
	Email string
	// Name and AvatarURL are optional display fields. AvatarURL is passed
	// through as is; validate it before calling GenerateToken.
	Name        string
	AvatarURL   string
	AdminScopes []string
}

type identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// GenerateToken signs a widget token for user with the given API key.
// It performs no I/O. See Client.GenerateToken for the claim layout.
func GenerateToken(apiKey string, user User, extra map[string]any) (string, error) {
	key, err := apikey.Parse(apiKey)
	if err != nil {
		return "", err
	}
	return generateToken(key, time.Now, user, extra)
}

// GenerateToken signs a widget token for user with the client's API key.
//
// The payload carries userId, expires (now + 1h) and identifiers.
// userEmail, userName and userAvatarUrl are added when set. When AdminScopes contains
// AutojoinScope, userIsAutojoinAdmin=true and role="admin" are added; both
// encode the same fact for different widget versions.
//
// Keys in extra are merged last and overwrite any of the above, expires
// included. This lets callers shorten or extend token lifetime and is a
// security-sensitive surface: never pass untrusted input as extra claims.
// The header (iat, alg, typ, kid) cannot be changed through extra.
func (c *Client) GenerateToken(user User, extra map[string]any) (string, error) {
	return generateToken(c.key, c.now, user, extra)
}

// generateToken reads the clock once so iat and expires share one instant.
func generateToken(key apikey.Key, now func() time.Time, user User, extra map[string]any) (string, error) {
	issuedAt := now()
	signer, err := jwt.New(key, jwt.WithClock(func() time.Time { return issuedAt }))
	if err != nil {
		return "", err
	}
	return signer.Generate(widgetClaims(user, issuedAt, extra))
}

func widgetClaims(user User, now time.Time, extra map[string]any) map[string]any {
	identifiers := []identifier{}
	if user.Email != "" {
		identifiers = append(identifiers, identifier{Type: string(TargetTypeEmail), Value: user.Email})
	}

	claims := map[string]any{
		"userId":      user.ID,
		"expires":     now.Add(tokenTTL).Unix(),
		"identifiers": identifiers,
	}
	if user.Email != "" {
		claims["userEmail"] = user.Email
	}
	if user.Name != "" {
		claims["userName"] = user.Name
	}
	if user.AvatarURL != "" {
		claims["userAvatarUrl"] = user.AvatarURL
	}
	if slices.Contains(user.AdminScopes, AutojoinScope) {
		claims["userIsAutojoinAdmin"] = true
		claims["role"] = "admin"
	}

	maps.Copy(claims, extra)
	return claims
}
