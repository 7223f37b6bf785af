// Package requestid carries a correlation identifier for outbound API calls.
//
// Every request the vortex client sends has an "X-Request-ID" header. When the
// caller's context already carries a valid ID (see WithContext) it is reused,
// so one user action can be traced across several API calls and the caller's
// own logs. Otherwise a new UUIDv4 is generated for that request.
//
// # Usage
//
//	ctx := requestid.WithContext(ctx, "checkout-42")
//	inv, err := client.GetInvitation(ctx, id) // sent with X-Request-ID: checkout-42
//
// # Logger integration
//
// LoggerExtractor plugs into the logger package so log records written with a
// context include a "request_id" attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// IDs longer than 128 characters or containing anything other than letters,
// digits, '-' and '_' are treated as absent and replaced.
package requestid
