package logger

import (
	"log/slog"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Operation records the client operation name under the key "operation".
func Operation(name string) slog.Attr {
	return slog.String("operation", name)
}

// InvitationID records the invitation identifier under the key "invitation_id".
// If id is empty, it returns an empty Attr.
func InvitationID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("invitation_id", id)
}

// HTTPRequest groups method and path under the key "request".
func HTTPRequest(method, path string) slog.Attr {
	return Group("request", slog.String("method", method), slog.String("path", path))
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
