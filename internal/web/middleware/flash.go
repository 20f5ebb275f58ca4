package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mcoot/boggle-go/internal/web/templates/layout"
)

// Flash kinds, used as CSS modifiers by the layout
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

const flashCookie = "flash"

type flashKey struct{}

// SetFlash queues a message for the next page the browser loads
func SetFlash(w http.ResponseWriter, kind, message string) {
	v := url.Values{"k": {kind}, "m": {message}}
	http.SetCookie(w, flashCookieWith(v.Encode(), 60))
}

// GetFlash returns the message consumed for this request, if any
func GetFlash(ctx context.Context) *layout.FlashMessage {
	msg, _ := ctx.Value(flashKey{}).(*layout.FlashMessage)
	return msg
}

// Flash consumes any pending flash cookie and exposes it through GetFlash.
// A message is shown exactly once.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(flashCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			http.SetCookie(w, flashCookieWith("", -1))
			ctx := r.Context()
			if msg := decodeFlash(c.Value); msg != nil {
				ctx = context.WithValue(ctx, flashKey{}, msg)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func flashCookieWith(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// decodeFlash returns nil for a cookie it cannot make sense of
func decodeFlash(raw string) *layout.FlashMessage {
	v, err := url.ParseQuery(raw)
	if err != nil || v.Get("m") == "" {
		return nil
	}
	kind := v.Get("k")
	switch kind {
	case FlashSuccess, FlashError, FlashInfo:
	default:
		kind = FlashInfo
	}
	return &layout.FlashMessage{Type: kind, Message: v.Get("m")}
}
