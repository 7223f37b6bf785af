// Package logger is a thin layer over log/slog: a New factory configured by
// functional options, a handler decorator that injects attributes pulled from
// context.Context, and attribute helpers that keep key names consistent.
//
// The client library logs through a *slog.Logger supplied by the caller and
// falls back to Discard, so it is silent unless asked otherwise. The CLI builds
// its logger with New.
//
// # Usage
//
//	import "github.com/dmitrymomot/vortex/pkg/logger"
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithVerbose(true),
//	    logger.WithRedactedKeys("api_key"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.WarnContext(ctx, "deprecated accept shape",
//	    logger.Operation("accept_invitations"),
//	    logger.Error(err),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. Attributes whose key is passed to WithRedactedKeys are
// written as RedactedValue.
package logger
