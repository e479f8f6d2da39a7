package contextutil

import "context"

// Tipe privat agar tidak terjadi tabrakan key dengan library lain
type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID menginjeksi Request ID ke context (juga dipakai unit test)
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

// GetRequestID mengambil Request ID dari context
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}
