package middleware

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeySession  ctxKey = "session"
	ctxKeyLocaleFB ctxKey = "locale_fallback"
)
