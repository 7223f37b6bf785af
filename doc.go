// Package vortex is a Go client for the Vortex invitation service.
//
// It covers two jobs:
//
//   - Signing widget tokens. GenerateToken turns an API key and a User into a
//     short-lived HS256 token the Vortex widget accepts as proof of identity.
//     No network call is made.
//   - Calling the invitation API. Client exposes one method per remote
//     operation (fetch, list, create, accept, revoke, reinvite, delete by
//     group, autojoin configuration) and returns typed results.
//
// # Usage
//
//	client, err := vortex.New(os.Getenv("VORTEX_API_KEY"),
//	    vortex.WithLogger(log),
//	)
//	if err != nil {
//	    // vortex.ErrInvalidKeyFormat or vortex.ErrInvalidKeyPrefix
//	}
//
//	token, err := client.GenerateToken(vortex.User{
//	    ID:          "user-123",
//	    Email:       "jane@example.com",
//	    AdminScopes: []string{vortex.AutojoinScope},
//	}, nil)
//
//	inv, err := client.AcceptInvitation(ctx, invitationID, vortex.AcceptUser{
//	    Email: "jane@example.com",
//	})
//
// # Configuration
//
// The API key is a constructor argument. The base URL is resolved once in New:
// WithBaseURL wins, then the VORTEX_API_BASE_URL environment variable, then
// DefaultBaseURL. NewFromConfig builds a client from a Config loaded with
// LoadConfig.
//
// # Error Handling
//
// Malformed keys fail before any network or cryptographic work. Non-2xx
// responses surface as *APIError, which matches ErrAPIRequestFailed under
// errors.Is. Successful responses with an empty or unparseable body are not
// errors: the method returns an empty result instead.
//
// Every request carries an X-Request-ID header. Store an ID in the context
// with requestid.WithContext to correlate API calls with your own logs;
// otherwise a fresh one is generated per request.
//
// # Concurrency
//
// A Client holds only immutable settings and is safe for concurrent use.
// The library performs no retries, caching or rate limiting; timeouts and
// cancellation come from the context and the *http.Client you supply.
package vortex
